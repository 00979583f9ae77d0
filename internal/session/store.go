package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Fixed-width so started_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (s *implStore) Load(ctx context.Context, name string) (Session, error) {
	var lastAudio string
	err := s.db.QueryRowContext(ctx, `SELECT last_audio FROM sessions WHERE name = ?`, name).Scan(&lastAudio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{Name: name}, nil
		}
		return Session{}, fmt.Errorf("query session %q: %w", name, err)
	}
	return Session{Name: name, LastAudio: lastAudio}, nil
}

func (s *implStore) SetLastAudio(ctx context.Context, name, path string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO sessions (name, last_audio, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET last_audio = excluded.last_audio, updated_at = excluded.updated_at`,
		name, path, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("save session %q: %w", name, err)
	}
	return nil
}

func (s *implStore) RecordRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return errors.New("record run: empty id")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs (id, session, audio, steps, status, error, started_at, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Session, run.Audio, strings.Join(run.Steps, ","), run.Status, run.Error,
		run.StartedAt.UTC().Format(timeLayout), run.FinishedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}
	return nil
}

func (s *implStore) Runs(ctx context.Context, name string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, session, audio, steps, status, error, started_at, finished_at
FROM runs WHERE session = ? ORDER BY started_at DESC LIMIT ?`, name, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	out := make([]Run, 0)
	for rows.Next() {
		var r Run
		var steps, started, finished string
		if err := rows.Scan(&r.ID, &r.Session, &r.Audio, &steps, &r.Status, &r.Error, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		if steps != "" {
			r.Steps = strings.Split(steps, ",")
		}
		if r.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("parse run %s start: %w", r.ID, err)
		}
		if r.FinishedAt, err = time.Parse(timeLayout, finished); err != nil {
			return nil, fmt.Errorf("parse run %s finish: %w", r.ID, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run rows: %w", err)
	}
	return out, nil
}

func (s *implStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
