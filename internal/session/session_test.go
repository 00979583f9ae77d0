package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "state.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadUnknownSession(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Load(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != "alice" || got.LastAudio != "" {
		t.Errorf("Load() = %+v, want empty session named alice", got)
	}
}

func TestSetLastAudio(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SetLastAudio(ctx, "alice", "/tmp/a.mp3"); err != nil {
		t.Fatalf("SetLastAudio() error = %v", err)
	}
	if err := s.SetLastAudio(ctx, "alice", "/tmp/b.mp3"); err != nil {
		t.Fatalf("SetLastAudio() error = %v", err)
	}
	if err := s.SetLastAudio(ctx, "bob", "/tmp/c.mp3"); err != nil {
		t.Fatalf("SetLastAudio() error = %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"alice", "/tmp/b.mp3"},
		{"bob", "/tmp/c.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Load(ctx, tt.name)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got.LastAudio != tt.want {
				t.Errorf("LastAudio = %q, want %q", got.LastAudio, tt.want)
			}
		})
	}
}

func TestRecordAndListRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	runs := []Run{
		{ID: "r1", Session: "alice", Audio: "a.mp3", Steps: []string{"summarize"}, Status: StatusSucceeded, StartedAt: base, FinishedAt: base.Add(time.Minute)},
		{ID: "r2", Session: "alice", Audio: "b.mp3", Steps: []string{"summarize", "send"}, Status: StatusFailed, Error: "boom", StartedAt: base.Add(time.Hour), FinishedAt: base.Add(time.Hour + time.Minute)},
		{ID: "r3", Session: "bob", Audio: "c.mp3", Status: StatusSucceeded, StartedAt: base, FinishedAt: base},
	}
	for _, r := range runs {
		if err := s.RecordRun(ctx, r); err != nil {
			t.Fatalf("RecordRun(%s) error = %v", r.ID, err)
		}
	}

	got, err := s.Runs(ctx, "alice", 10)
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Runs()) = %d, want 2", len(got))
	}
	if got[0].ID != "r2" || got[1].ID != "r1" {
		t.Errorf("Runs() order = [%s %s], want [r2 r1]", got[0].ID, got[1].ID)
	}
	if got[0].Error != "boom" || len(got[0].Steps) != 2 || got[0].Steps[1] != "send" {
		t.Errorf("Runs()[0] = %+v", got[0])
	}
	if !got[1].StartedAt.Equal(base) {
		t.Errorf("StartedAt = %v, want %v", got[1].StartedAt, base)
	}

	limited, err := s.Runs(ctx, "alice", 1)
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "r2" {
		t.Errorf("Runs(limit 1) = %v", limited)
	}

	bob, err := s.Runs(ctx, "bob", 0)
	if err != nil {
		t.Fatalf("Runs() error = %v", err)
	}
	if len(bob) != 1 || bob[0].Steps != nil {
		t.Errorf("Runs(bob) = %+v", bob)
	}
}

func TestRecordRunRequiresID(t *testing.T) {
	s := openTestStore(t)
	if err := s.RecordRun(context.Background(), Run{Session: "alice"}); err == nil {
		t.Error("RecordRun() error = nil, want error for empty id")
	}
}

func TestGuard(t *testing.T) {
	g := NewGuard()

	if err := g.TryAcquire(); err != nil {
		t.Fatalf("first TryAcquire() error = %v", err)
	}
	if err := g.TryAcquire(); !errors.Is(err, ErrRunInProgress) {
		t.Fatalf("second TryAcquire() error = %v, want ErrRunInProgress", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := g.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Acquire() on busy guard error = %v, want DeadlineExceeded", err)
	}

	g.Release()
	if err := g.Acquire(context.Background()); err != nil {
		t.Errorf("Acquire() after Release error = %v", err)
	}
	g.Release()
	g.Release()
	if err := g.TryAcquire(); err != nil {
		t.Errorf("TryAcquire() after double Release error = %v", err)
	}
}
