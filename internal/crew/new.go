package crew

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

// Crew pairs agents[i] with tasks[i].
type Crew struct {
	agents  []Agent
	tasks   []Task
	verbose bool
	logger  logger.Logger
}

// Option configures a Crew.
type Option func(*Crew)

// WithVerbose logs each task's inputs and output at info level.
func WithVerbose(v bool) Option {
	return func(c *Crew) { c.verbose = v }
}

// WithLogger sets the logger; the default discards output.
func WithLogger(l logger.Logger) Option {
	return func(c *Crew) { c.logger = l }
}

// New creates a Crew. agents and tasks must have the same length and no nil agent.
func New(agents []Agent, tasks []Task, opts ...Option) (*Crew, error) {
	if len(agents) != len(tasks) {
		return nil, fmt.Errorf("crew: %d agents for %d tasks", len(agents), len(tasks))
	}
	seen := make(map[string]bool, len(tasks))
	for i, a := range agents {
		if a == nil {
			return nil, fmt.Errorf("crew: task %q has no agent", tasks[i].Name)
		}
		if tasks[i].Name == "" {
			return nil, fmt.Errorf("crew: task %d has no name", i)
		}
		if seen[tasks[i].Name] {
			return nil, fmt.Errorf("crew: duplicate task %q", tasks[i].Name)
		}
		seen[tasks[i].Name] = true
	}

	c := &Crew{
		agents: agents,
		tasks:  tasks,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}
