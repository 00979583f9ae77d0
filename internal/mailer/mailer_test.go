package mailer

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestCredentialsMissing(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  []string
	}{
		{"complete", Credentials{"a@x.io", "b@x.io", "pw"}, nil},
		{"all empty", Credentials{}, []string{"sender", "receiver", "password"}},
		{"blank receiver", Credentials{"a@x.io", "   ", "pw"}, []string{"receiver"}},
		{"no password", Credentials{"a@x.io", "b@x.io", ""}, []string{"password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.creds.Missing(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Missing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func render(t *testing.T, creds Credentials, msg Message) string {
	t.Helper()
	m, err := buildMessage(creds, msg, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("buildMessage() error = %v", err)
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	return buf.String()
}

func TestBuildMessage(t *testing.T) {
	creds := Credentials{Sender: "me@example.com", Receiver: "team@example.com"}
	out := render(t, creds, Message{
		Subject: "Follow-up\r\nBcc: evil@example.com",
		Body:    "Hi team,\n\n- Ship Q3 roadmap\n",
	})

	for _, want := range []string{
		"From: <me@example.com>",
		"To: <team@example.com>",
		"Subject: Follow-up  Bcc: evil@example.com\r\n",
		"Date: Thu, 15 Oct 2026 09:30:00 +0000",
		"Content-Type: text/plain; charset=UTF-8",
		"Ship Q3 roadmap",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("message missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\r\nBcc:") {
		t.Error("subject line break must not create a header")
	}
}

func TestBuildMessageEncodesSubject(t *testing.T) {
	creds := Credentials{Sender: "me@example.com", Receiver: "team@example.com"}
	out := render(t, creds, Message{Subject: "Résumé of the sync", Body: "b"})

	if strings.Contains(out, "Résumé") {
		t.Errorf("raw non-ASCII subject in headers:\n%s", out)
	}
	if !strings.Contains(strings.ToLower(out), "subject: =?utf-8?") {
		t.Errorf("subject not RFC 2047 encoded:\n%s", out)
	}
}

func TestBuildMessageRejectsInvalidAddress(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  string
	}{
		{"bad sender", Credentials{Sender: "not an address", Receiver: "team@example.com"}, "invalid sender"},
		{"bad receiver", Credentials{Sender: "me@example.com", Receiver: "team@@example"}, "invalid receiver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.creds, Message{Subject: "s", Body: "b"}, time.Now())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("buildMessage() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestClientOptionsTimeout(t *testing.T) {
	s := NewSMTP("smtp.example.com", 587).(*implSMTP)
	if s.timeout != sendTimeout {
		t.Errorf("timeout = %v, want %v", s.timeout, sendTimeout)
	}
	if got := len(s.clientOptions(Credentials{})); got != 6 {
		t.Errorf("clientOptions() = %d options, want 6", got)
	}
}

func TestSendRejectsIncompleteCredentials(t *testing.T) {
	s := NewSMTP("127.0.0.1", 1)
	err := s.Send(context.Background(), Credentials{Sender: "a@x.io"}, Message{Subject: "s", Body: "b"})
	if err == nil || !strings.Contains(err.Error(), "receiver, password") {
		t.Errorf("Send() error = %v, want missing credentials", err)
	}
}
