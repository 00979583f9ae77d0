package watcher

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

// settleDelay gives the writer time to finish before the file is read.
const settleDelay = 500 * time.Millisecond

// New creates a Watcher on inboxDir. When archiveDir is set, each recording is
// moved there before the handler sees it.
func New(inboxDir, archiveDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	if err := os.MkdirAll(inboxDir, 0755); err != nil {
		return nil, fmt.Errorf("create inbox: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inboxDir:   inboxDir,
		archiveDir: archiveDir,
		handler:    handler,
		logger:     log,
		watcher:    watcher,
		settle:     settleDelay,
	}, nil
}
