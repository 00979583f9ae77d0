package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
)

func TestWants(t *testing.T) {
	w := &implWatcher{logger: logger.Nop()}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"mp3 created", fsnotify.Event{Name: "/in/a.mp3", Op: fsnotify.Create}, true},
		{"upper case wav", fsnotify.Event{Name: "/in/b.WAV", Op: fsnotify.Create}, true},
		{"m4a created", fsnotify.Event{Name: "/in/c.m4a", Op: fsnotify.Create}, true},
		{"video ignored", fsnotify.Event{Name: "/in/d.mp4", Op: fsnotify.Create}, false},
		{"write ignored", fsnotify.Event{Name: "/in/a.mp3", Op: fsnotify.Write}, false},
		{"directory ignored", fsnotify.Event{Name: "/in/processed", Op: fsnotify.Create}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.wants(tt.event); got != tt.want {
				t.Errorf("wants(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestHandleArchivesFirst(t *testing.T) {
	dir := t.TempDir()
	inbox := filepath.Join(dir, "inbox")
	archiveDir := filepath.Join(dir, "processed")
	if err := os.MkdirAll(inbox, 0755); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(inbox, "standup.mp3")
	if err := os.WriteFile(src, []byte("ID3"), 0644); err != nil {
		t.Fatal(err)
	}

	var got []string
	w := &implWatcher{
		archiveDir: archiveDir,
		logger:     logger.Nop(),
		handler: func(_ context.Context, path string) error {
			got = append(got, path)
			return nil
		},
	}
	w.handle(context.Background(), src)

	want := filepath.Join(archiveDir, "standup.mp3")
	if len(got) != 1 || got[0] != want {
		t.Fatalf("handler got %v, want [%s]", got, want)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("source still in inbox: %v", err)
	}
}

func TestHandleWithoutArchive(t *testing.T) {
	var got string
	w := &implWatcher{
		logger: logger.Nop(),
		handler: func(_ context.Context, path string) error {
			got = path
			return os.ErrNotExist
		},
	}
	w.handle(context.Background(), "/in/a.mp3")
	if got != "/in/a.mp3" {
		t.Errorf("handler got %q", got)
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	w, err := New(t.TempDir(), "", func(context.Context, string) error { return nil }, logger.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Start(ctx); err != context.Canceled {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}
}
