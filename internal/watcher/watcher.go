package watcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/meeting-flow/internal/acquire"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

type implWatcher struct {
	inboxDir   string
	archiveDir string
	handler    EventHandler
	logger     logger.Logger
	watcher    *fsnotify.Watcher
	settle     time.Duration
}

// Start monitors the inbox until ctx is done. Recordings are handled one at a
// time, in the order they arrive.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started. Monitoring: %s", w.inboxDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(acquire.AudioExtensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.wants(event) {
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)

			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				return ctx.Err()
			}

			w.handle(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) wants(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) {
		return false
	}
	if !acquire.IsAudioFile(event.Name) {
		w.logger.Debug(context.Background(), "Ignoring non-audio file: %s", event.Name)
		return false
	}
	return true
}

// handle moves the recording out of the inbox first, so a restart never picks it up twice.
func (w *implWatcher) handle(ctx context.Context, path string) {
	if w.archiveDir != "" {
		moved, err := archive(path, w.archiveDir)
		if err != nil {
			w.logger.Warn(ctx, "Failed to archive %s: %v", path, err)
		} else {
			path = moved
		}
	}

	if err := w.handler(ctx, path); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", path, err)
	}
}
