package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfig marks a pipeline that cannot be built from the given toggles and settings.
	ErrConfig = errors.New("pipeline configuration error")
	// ErrStep marks a failure of one step while the pipeline was running.
	ErrStep = errors.New("pipeline step failed")
)

// ConfigError names the step whose configuration is incomplete.
type ConfigError struct {
	Kind    Kind
	Missing []string
	Reason  string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("step %s enabled but missing: %s", e.Kind, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("step %s: %s", e.Kind, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// StepError reports which step stopped the run. Index is the position in the pipeline.
type StepError struct {
	Index int
	Kind  Kind
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s) failed: %v", e.Index+1, e.Kind.Label(), e.Err)
}

func (e *StepError) Is(target error) bool { return target == ErrStep }

func (e *StepError) Unwrap() error { return e.Err }
