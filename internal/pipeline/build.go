package pipeline

import (
	"github.com/nguyentantai21042004/meeting-flow/internal/crew"
	"github.com/nguyentantai21042004/meeting-flow/internal/mailer"
)

// Flags are the user's step toggles for one run.
type Flags struct {
	Summarize bool
	Actions   bool
	Email     bool
	Send      bool
}

// Enabled reports whether the toggle for k is on.
func (f Flags) Enabled(k Kind) bool {
	switch k {
	case Summarize:
		return f.Summarize
	case ActionItems:
		return f.Actions
	case DraftEmail:
		return f.Email
	case SendEmail:
		return f.Send
	default:
		return false
	}
}

// Count is the number of enabled toggles.
func (f Flags) Count() int {
	n := 0
	for _, k := range kindOrder {
		if f.Enabled(k) {
			n++
		}
	}
	return n
}

// Pipeline is the ordered subset of the catalog selected for one run.
// Kinds[i], Agents[i] and Tasks[i] always describe the same step.
type Pipeline struct {
	Kinds  []Kind
	Agents []crew.Agent
	Tasks  []crew.Task
}

// Len is the number of steps.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Kinds)
}

// Build selects the enabled steps in registry order. The send step needs
// complete credentials; they are bound into that step's agent and nowhere else.
func (r *Registry) Build(flags Flags, creds *mailer.Credentials) (*Pipeline, error) {
	p := &Pipeline{}

	for _, e := range r.entries {
		if !flags.Enabled(e.Kind) {
			continue
		}

		a, err := r.agentFor(e.Kind, creds)
		if err != nil {
			return nil, err
		}

		p.Kinds = append(p.Kinds, e.Kind)
		p.Agents = append(p.Agents, a)
		p.Tasks = append(p.Tasks, e.Task)
	}

	return p, nil
}

func (r *Registry) agentFor(k Kind, creds *mailer.Credentials) (crew.Agent, error) {
	var a crew.Agent
	switch k {
	case Summarize:
		a = r.caps.Summarizer
	case ActionItems:
		a = r.caps.ActionItems
	case DraftEmail:
		a = r.caps.EmailDrafter
	case SendEmail:
		if creds == nil {
			return nil, &ConfigError{Kind: k, Missing: mailer.Credentials{}.Missing()}
		}
		if missing := creds.Missing(); len(missing) > 0 {
			return nil, &ConfigError{Kind: k, Missing: missing}
		}
		if r.caps.Mailer != nil {
			a = r.caps.Mailer(*creds)
		}
	}

	if a == nil {
		return nil, &ConfigError{Kind: k, Reason: "no capability registered"}
	}
	return a, nil
}
