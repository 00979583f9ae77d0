package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-flow/internal/report"
	"github.com/nguyentantai21042004/meeting-flow/internal/session"
	"github.com/nguyentantai21042004/meeting-flow/internal/transcribe"
)

// Process runs one request end to end. The pipeline is built before the
// transcript exists, so a configuration error costs no transcription.
func (p *implProcessor) Process(ctx context.Context, req Request) (out *Outcome, err error) {
	if err := p.admit(ctx, req.Wait); err != nil {
		return nil, err
	}
	defer p.guard.Release()

	startTime := time.Now()
	out = &Outcome{RunID: uuid.NewString()}
	ctx = logger.WithRunID(ctx, out.RunID)

	name := req.Session
	if name == "" {
		name = p.cfg.Session.Name
	}

	out.Audio, err = p.resolveAudio(ctx, name, req.Audio)
	if err != nil {
		return nil, err
	}
	defer func() { p.record(ctx, name, req.Flags, out, startTime, err) }()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting run for %s", out.Audio)
	p.logger.Info(ctx, "========================================")

	// Step 1: Select the steps
	pl, err := p.registry.Build(req.Flags, req.Credentials)
	if err != nil {
		return out, err
	}

	// Step 2: Transcribe
	out.Transcript, err = transcribe.Background(ctx, p.transcriber, out.Audio)
	if err != nil {
		return out, err
	}
	p.presenter.Transcript(out.Transcript)

	// Step 3: Run the steps
	out.Results, err = p.executor.Execute(ctx, pl, out.Transcript)
	for _, r := range out.Results {
		p.presenter.Step(r)
	}
	if err != nil {
		return out, err
	}

	// Step 4: Export
	out.MarkdownPath, out.DocxPath, err = report.Export(p.cfg.Paths.Output, filepath.Base(out.Audio), out.Transcript, out.Results)
	if err != nil {
		p.logger.Warn(ctx, "Failed to export report: %v", err)
		err = nil
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Run completed: %d step(s) in %s", len(out.Results), time.Since(startTime).Round(time.Millisecond))
	if out.MarkdownPath != "" {
		p.logger.Info(ctx, "Report: %s", out.MarkdownPath)
	}
	p.logger.Info(ctx, "========================================")

	return out, nil
}

func (p *implProcessor) admit(ctx context.Context, wait bool) error {
	if !wait {
		return p.guard.TryAcquire()
	}
	if err := p.guard.TryAcquire(); err == nil {
		return nil
	}
	p.logger.Info(ctx, "Another run is active, waiting for it to finish")
	return p.guard.Acquire(ctx)
}

// resolveAudio picks the explicit path or the session's last audio and checks it exists.
func (p *implProcessor) resolveAudio(ctx context.Context, name, explicit string) (string, error) {
	path := explicit
	if path == "" {
		s, err := p.store.Load(ctx, name)
		if err != nil {
			return "", fmt.Errorf("load session: %w", err)
		}
		path = s.LastAudio
	}
	if path == "" {
		return "", fmt.Errorf("%w: upload or download a recording first", ErrAudioMissing)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrAudioMissing, path)
	}

	if explicit != "" {
		if err := p.store.SetLastAudio(ctx, name, path); err != nil {
			p.logger.Warn(ctx, "Failed to remember audio for session %s: %v", name, err)
		}
	}
	return path, nil
}

func (p *implProcessor) record(ctx context.Context, name string, flags pipeline.Flags, out *Outcome, started time.Time, runErr error) {
	run := session.Run{
		ID:         out.RunID,
		Session:    name,
		Audio:      out.Audio,
		Status:     session.StatusSucceeded,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	for _, k := range pipeline.Kinds() {
		if flags.Enabled(k) {
			run.Steps = append(run.Steps, k.String())
		}
	}
	if runErr != nil {
		run.Status = session.StatusFailed
		run.Error = runErr.Error()
	}

	if err := p.store.RecordRun(context.WithoutCancel(ctx), run); err != nil {
		p.logger.Warn(ctx, "Failed to record run: %v", err)
	}
}
