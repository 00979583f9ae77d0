package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-flow/internal/crew"
	"github.com/nguyentantai21042004/meeting-flow/internal/mailer"
)

const defaultSubject = "Meeting follow-up"

type implMailer struct {
	sender mailer.Sender
	creds  mailer.Credentials
}

// NewMailer creates the agent that delivers the follow-up by email.
// creds belong to a single run.
func NewMailer(sender mailer.Sender, creds mailer.Credentials) crew.Agent {
	return &implMailer{sender: sender, creds: creds}
}

func (m *implMailer) Name() string { return "Mailer" }

// Perform sends the best body available: the drafted email, otherwise the
// summary and action items, otherwise the raw transcript.
func (m *implMailer) Perform(ctx context.Context, task crew.Task, inputs map[string]string) (string, error) {
	msg, err := composeMessage(inputs)
	if err != nil {
		return "", err
	}

	if err := m.sender.Send(ctx, m.creds, msg); err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	return fmt.Sprintf("Email sent to %s (subject: %s)", m.creds.Receiver, msg.Subject), nil
}

func composeMessage(inputs map[string]string) (mailer.Message, error) {
	if draft := strings.TrimSpace(inputs[KeyEmailDraft]); draft != "" {
		subject, body := splitSubject(draft)
		return mailer.Message{Subject: subject, Body: body}, nil
	}

	var sections []string
	for _, key := range []string{KeySummary, KeyActionItems} {
		if v := strings.TrimSpace(inputs[key]); v != "" {
			sections = append(sections, label(key)+"\n\n"+v)
		}
	}
	if len(sections) > 0 {
		return mailer.Message{Subject: defaultSubject, Body: strings.Join(sections, "\n\n")}, nil
	}

	if t := strings.TrimSpace(inputs[KeyTranscript]); t != "" {
		return mailer.Message{Subject: defaultSubject + ": transcript", Body: t}, nil
	}
	return mailer.Message{}, errors.New("nothing to send: no draft, summary, action items or transcript")
}

// splitSubject lifts a leading "Subject:" line out of a drafted email.
func splitSubject(draft string) (string, string) {
	first, rest, _ := strings.Cut(draft, "\n")
	first = strings.TrimSpace(strings.TrimLeft(first, "*# "))
	first = strings.TrimSuffix(first, "**")
	if len(first) > len("subject:") && strings.EqualFold(first[:len("subject:")], "subject:") {
		subject := strings.TrimSpace(strings.Trim(first[len("subject:"):], "* "))
		if subject != "" {
			return subject, strings.TrimSpace(rest)
		}
	}
	return defaultSubject, draft
}
