package crew

import (
	"context"
	"fmt"
	"time"
)

// TaskError reports the task that stopped a kickoff.
type TaskError struct {
	Index int
	Task  string
	Err   error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %d (%s) failed: %v", e.Index+1, e.Task, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }

// Kickoff runs every task in order. inputs seed the shared context.
// The first failure stops the run; the returned Output then holds
// the tasks that finished before it.
func (c *Crew) Kickoff(ctx context.Context, inputs map[string]string) (*Output, error) {
	start := time.Now()

	shared := make(map[string]string, len(inputs)+len(c.tasks))
	for k, v := range inputs {
		shared[k] = v
	}

	out := &Output{TasksOutput: make([]TaskOutput, 0, len(c.tasks))}

	for i, task := range c.tasks {
		agent := c.agents[i]

		if err := ctx.Err(); err != nil {
			out.Duration = time.Since(start)
			return out, &TaskError{Index: i, Task: task.Name, Err: err}
		}

		visible := make(map[string]string, len(task.Inputs))
		for _, key := range task.Inputs {
			if v, ok := shared[key]; ok {
				visible[key] = v
			}
		}

		c.logger.Info(ctx, "[%d/%d] %s -> %s", i+1, len(c.tasks), agent.Name(), task.Name)
		if c.verbose {
			c.logger.Info(ctx, "Task %s reads %v", task.Name, keys(visible, task.Inputs))
		}

		taskStart := time.Now()
		raw, err := agent.Perform(ctx, task, visible)
		if err != nil {
			c.logger.Error(ctx, "Task %s failed: %v", task.Name, err)
			out.Duration = time.Since(start)
			return out, &TaskError{Index: i, Task: task.Name, Err: err}
		}

		shared[task.Name] = raw
		out.TasksOutput = append(out.TasksOutput, TaskOutput{
			Index:    i,
			Task:     task.Name,
			Agent:    agent.Name(),
			Raw:      raw,
			Duration: time.Since(taskStart),
		})

		if c.verbose {
			c.logger.Info(ctx, "Task %s produced %d characters", task.Name, len(raw))
		}
	}

	out.Duration = time.Since(start)
	return out, nil
}

// keys lists the declared inputs that were present, in declaration order.
func keys(visible map[string]string, declared []string) []string {
	var present []string
	for _, k := range declared {
		if _, ok := visible[k]; ok {
			present = append(present, k)
		}
	}
	return present
}
