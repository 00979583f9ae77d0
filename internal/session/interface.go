// Package session keeps the state that outlives a single run: the last audio
// file a session worked on and the history of runs.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrRunInProgress is returned when a run is requested while another is active.
var ErrRunInProgress = errors.New("a run is already in progress")

// Session is the explicit per-user state passed into each run.
type Session struct {
	Name      string
	LastAudio string
}

// Run status values.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Run is one recorded pipeline run.
type Run struct {
	ID         string
	Session    string
	Audio      string
	Steps      []string
	Status     string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Store persists sessions and run history.
type Store interface {
	// Load returns the named session. Unknown names yield an empty session.
	Load(ctx context.Context, name string) (Session, error)
	SetLastAudio(ctx context.Context, name, path string) error
	RecordRun(ctx context.Context, run Run) error
	// Runs lists the most recent runs of a session, newest first.
	Runs(ctx context.Context, name string, limit int) ([]Run, error)
	Close() error
}
