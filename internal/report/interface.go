// Package report shows run results on the terminal and exports them to files.
package report

import "github.com/nguyentantai21042004/meeting-flow/internal/pipeline"

// Presenter renders one run as it happens.
type Presenter interface {
	// Transcript shows a preview of the transcript before any step runs.
	Transcript(text string)
	// Step shows one step's output. Results arrive in pipeline order.
	Step(result pipeline.Result)
	Failure(err error)
	// Notice shows a one-line status message.
	Notice(format string, args ...any)
}
