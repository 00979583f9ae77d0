package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/agent"
	"github.com/nguyentantai21042004/meeting-flow/internal/crew"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

// Result is the output of the step at Index in the pipeline.
type Result struct {
	Index    int
	Kind     Kind
	Agent    string
	Output   string
	Duration time.Duration
}

// Executor runs a built pipeline as one crew session.
type Executor struct {
	logger  logger.Logger
	verbose bool
}

// NewExecutor creates an Executor. verbose turns on per-task context logging.
func NewExecutor(log logger.Logger, verbose bool) *Executor {
	return &Executor{logger: log, verbose: verbose}
}

// Execute runs every step in order against the transcript and returns one
// result per step, result[i] belonging to step i. On a step failure the
// run stops and the results of the finished steps come back with a *StepError.
func (e *Executor) Execute(ctx context.Context, p *Pipeline, transcript string) ([]Result, error) {
	if p.Len() == 0 {
		return []Result{}, nil
	}

	c, err := crew.New(p.Agents, p.Tasks, crew.WithVerbose(e.verbose), crew.WithLogger(e.logger))
	if err != nil {
		return nil, fmt.Errorf("assemble crew: %w", err)
	}

	e.logger.Info(ctx, "Running %d step(s)", p.Len())

	out, err := c.Kickoff(ctx, map[string]string{agent.KeyTranscript: transcript})

	results := make([]Result, 0, p.Len())
	if out != nil {
		for _, t := range out.TasksOutput {
			results = append(results, Result{
				Index:    t.Index,
				Kind:     p.Kinds[t.Index],
				Agent:    t.Agent,
				Output:   t.Raw,
				Duration: t.Duration,
			})
		}
	}

	if err != nil {
		var te *crew.TaskError
		if errors.As(err, &te) {
			return results, &StepError{Index: te.Index, Kind: p.Kinds[te.Index], Err: te.Err}
		}
		return results, fmt.Errorf("run crew: %w", err)
	}

	if len(results) != p.Len() {
		return results, fmt.Errorf("crew returned %d results for %d steps", len(results), p.Len())
	}
	return results, nil
}
