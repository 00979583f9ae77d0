package pipeline

import (
	"github.com/nguyentantai21042004/meeting-flow/internal/agent"
	"github.com/nguyentantai21042004/meeting-flow/internal/crew"
	"github.com/nguyentantai21042004/meeting-flow/internal/mailer"
)

// Capabilities are the agents available to the registry. Mailer builds a
// send agent bound to one run's credentials.
type Capabilities struct {
	Summarizer   crew.Agent
	ActionItems  crew.Agent
	EmailDrafter crew.Agent
	Mailer       func(creds mailer.Credentials) crew.Agent
}

// Entry is one catalog item: a kind and the task it always runs.
type Entry struct {
	Kind Kind
	Task crew.Task
}

// Registry is the fixed, ordered step catalog.
type Registry struct {
	caps    Capabilities
	entries []Entry
}

// NewRegistry pairs each kind with its task definition.
func NewRegistry(caps Capabilities) *Registry {
	return &Registry{caps: caps, entries: catalog()}
}

// Entries enumerates the catalog in registry order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func catalog() []Entry {
	return []Entry{
		{
			Kind: Summarize,
			Task: crew.Task{
				Name: agent.KeySummary,
				Description: "Summarize the meeting transcript. Start with a one-sentence overview, then cover " +
					"every topic in the order it was discussed, including decisions and open questions.",
				ExpectedOutput: "A markdown summary with headings and bullet points.",
				Inputs:         []string{agent.KeyTranscript},
			},
		},
		{
			Kind: ActionItems,
			Task: crew.Task{
				Name: agent.KeyActionItems,
				Description: "Extract every action item from the meeting transcript. For each one give the owner, " +
					"the task and the due date when one was mentioned.",
				ExpectedOutput: "A markdown bullet list, one action item per line: **Owner**: task (due date).",
				Inputs:         []string{agent.KeyTranscript},
			},
		},
		{
			Kind: DraftEmail,
			Task: crew.Task{
				Name: agent.KeyEmailDraft,
				Description: "Draft a follow-up email to the meeting attendees that recaps the discussion and " +
					"lists the next steps. Use the summary and action items when they are provided.",
				ExpectedOutput: "A plain-text email whose first line is 'Subject: <subject>'.",
				Inputs:         []string{agent.KeyTranscript, agent.KeySummary, agent.KeyActionItems},
			},
		},
		{
			Kind: SendEmail,
			Task: crew.Task{
				Name:           agent.KeyEmailDelivery,
				Description:    "Send the follow-up email to the configured receiver.",
				ExpectedOutput: "A confirmation that the email was delivered.",
				Inputs:         []string{agent.KeyEmailDraft, agent.KeySummary, agent.KeyActionItems, agent.KeyTranscript},
			},
		},
	}
}
