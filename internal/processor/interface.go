package processor

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/meeting-flow/internal/mailer"
	"github.com/nguyentantai21042004/meeting-flow/internal/pipeline"
)

// ErrAudioMissing means there is no audio file to process: none was given,
// the session has none, or the file is gone.
var ErrAudioMissing = errors.New("no audio file available")

// Request is the input of one run.
type Request struct {
	Session string
	// Audio overrides the session's last audio file when set.
	Audio string
	Flags pipeline.Flags
	// Credentials are required only when Flags.Send is set.
	Credentials *mailer.Credentials
	// Wait queues the run behind an active one instead of failing with session.ErrRunInProgress.
	Wait bool
}

// Outcome is what a run produced. On a step failure it holds the
// results of the steps that finished.
type Outcome struct {
	RunID        string
	Audio        string
	Transcript   string
	Results      []pipeline.Result
	MarkdownPath string
	DocxPath     string
}

// Processor runs the meeting pipeline for one audio file.
type Processor interface {
	Process(ctx context.Context, req Request) (*Outcome, error)
}
