package watcher

import "context"

// Watcher monitors the inbox for new recordings
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one recording dropped into the inbox
type EventHandler func(ctx context.Context, audioPath string) error
