// Package crew runs an ordered list of tasks, each performed by its paired agent,
// over one shared context that grows with every finished task.
package crew

import (
	"context"
	"time"
)

// Agent is a capability that can perform one kind of task.
type Agent interface {
	Name() string
	// Perform receives only the context entries the task declared in Inputs.
	Perform(ctx context.Context, task Task, inputs map[string]string) (string, error)
}

// Task describes one unit of work. Its output is stored in the shared
// context under Name, so later tasks can list Name in their Inputs.
type Task struct {
	Name           string
	Description    string
	ExpectedOutput string
	// Inputs are context keys this task reads: seed inputs or earlier task names.
	// Keys not present at run time are skipped.
	Inputs []string
}

// TaskOutput is the result of one task.
type TaskOutput struct {
	Index    int
	Task     string
	Agent    string
	Raw      string
	Duration time.Duration
}

// Output is the result of a kickoff, one entry per finished task, in task order.
type Output struct {
	TasksOutput []TaskOutput
	Duration    time.Duration
}
