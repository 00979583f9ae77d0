package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-flow/internal/crew"
	"github.com/nguyentantai21042004/meeting-flow/internal/llm"
)

const (
	summarizerRole = `You are a meeting analyst. You write accurate, well-structured summaries of meetings
for people who did not attend. Never invent facts that are not in the material you are given.`

	actionItemRole = `You are a project coordinator. You extract every concrete commitment from a meeting:
who will do what, and by when if a date was mentioned.`

	emailRole = `You are an executive assistant. You write clear, friendly follow-up emails that recap a
meeting and list the agreed next steps.`
)

type implLLMAgent struct {
	name   string
	role   string
	client llm.Client
}

// NewSummarizer creates the agent that condenses a transcript.
func NewSummarizer(c llm.Client) crew.Agent {
	return &implLLMAgent{name: "Summarizer", role: summarizerRole, client: c}
}

// NewActionItemExtractor creates the agent that lists action items.
func NewActionItemExtractor(c llm.Client) crew.Agent {
	return &implLLMAgent{name: "Action Item Extractor", role: actionItemRole, client: c}
}

// NewEmailDrafter creates the agent that writes the follow-up email.
func NewEmailDrafter(c llm.Client) crew.Agent {
	return &implLLMAgent{name: "Email Drafter", role: emailRole, client: c}
}

func (a *implLLMAgent) Name() string { return a.name }

func (a *implLLMAgent) Perform(ctx context.Context, task crew.Task, inputs map[string]string) (string, error) {
	if len(inputs) == 0 {
		return "", fmt.Errorf("%s: no input for task %s", a.name, task.Name)
	}

	out, err := a.client.Generate(ctx, buildPrompt(a.role, task, inputs))
	if err != nil {
		return "", fmt.Errorf("%s (%s): %w", a.name, a.client.Model(), err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", errors.New(a.name + ": model returned an empty answer")
	}
	return out, nil
}

// buildPrompt lays out role, task and the declared inputs in declaration order.
func buildPrompt(role string, task crew.Task, inputs map[string]string) string {
	var sb strings.Builder
	sb.WriteString(role)
	sb.WriteString("\n\n# Task\n\n")
	sb.WriteString(task.Description)
	if task.ExpectedOutput != "" {
		sb.WriteString("\n\n# Expected output\n\n")
		sb.WriteString(task.ExpectedOutput)
	}
	for _, key := range task.Inputs {
		content, ok := inputs[key]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n\n# %s\n\n---\n%s\n---", label(key), strings.TrimSpace(content))
	}
	sb.WriteString("\n")
	return sb.String()
}
