package mailer

import (
	"context"
	"strings"
)

// Credentials are the per-run mail settings. They travel as a value
// from the caller to the send step and are never stored globally.
type Credentials struct {
	Sender   string
	Receiver string
	Password string
}

// Missing names the empty credential fields, in a stable order.
func (c Credentials) Missing() []string {
	var missing []string
	if strings.TrimSpace(c.Sender) == "" {
		missing = append(missing, "sender")
	}
	if strings.TrimSpace(c.Receiver) == "" {
		missing = append(missing, "receiver")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}

// Message is a plain-text email.
type Message struct {
	Subject string
	Body    string
}

// Sender delivers a message using the given credentials.
type Sender interface {
	Send(ctx context.Context, creds Credentials, msg Message) error
}
