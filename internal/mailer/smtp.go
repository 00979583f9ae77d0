package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

const (
	sendTimeout = 30 * time.Second
	smtpsPort   = 465
)

type implSMTP struct {
	host    string
	port    int
	timeout time.Duration
}

// NewSMTP creates a Sender that submits mail to host:port over TLS with PLAIN auth.
// Port 465 uses implicit TLS, any other port requires STARTTLS.
func NewSMTP(host string, port int) Sender {
	return &implSMTP{host: host, port: port, timeout: sendTimeout}
}

func (s *implSMTP) Send(ctx context.Context, creds Credentials, msg Message) error {
	if missing := creds.Missing(); len(missing) > 0 {
		return fmt.Errorf("smtp credentials missing: %s", strings.Join(missing, ", "))
	}

	m, err := buildMessage(creds, msg, time.Now())
	if err != nil {
		return err
	}

	c, err := mail.NewClient(s.host, s.clientOptions(creds)...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (s *implSMTP) clientOptions(creds Credentials) []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(creds.Sender),
		mail.WithPassword(creds.Password),
		mail.WithTimeout(s.timeout),
	}
	if s.port == smtpsPort {
		return append(opts, mail.WithSSL())
	}
	return append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
}

// buildMessage validates both addresses and renders a plain-text message.
// Non-ASCII subjects are encoded as RFC 2047 words by go-mail.
func buildMessage(creds Credentials, msg Message, now time.Time) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(strings.TrimSpace(creds.Sender)); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(strings.TrimSpace(creds.Receiver)); err != nil {
		return nil, fmt.Errorf("invalid receiver address: %w", err)
	}
	m.Subject(sanitizeHeader(msg.Subject))
	m.SetDateWithValue(now)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

// sanitizeHeader drops line breaks that would let a subject inject headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}
