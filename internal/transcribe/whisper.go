package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/meeting-flow/internal/acquire"
)

// Transcribe converts the audio with ffmpeg, runs whisper.cpp with plain-text
// output and returns the text it wrote.
func (w *implWhisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := checkAudio(audioPath); err != nil {
		return "", err
	}

	outDir, err := os.MkdirTemp("", "transcript-*")
	if err != nil {
		return "", fmt.Errorf("create transcript dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	wavPath, err := w.prepareAudio(ctx, audioPath, outDir)
	if err != nil {
		return "", err
	}

	// whisper.cpp appends .txt to the output prefix
	outputPrefix := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath)))

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)

	// -otxt: plain transcript, no timestamps
	// -l: force language (prevents hallucination on silence)
	// -bo 5: best of 5 candidates
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %v: %w", err, ErrTranscription)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %v: %w", err, ErrTranscription)
	}

	text := joinLines(string(data))
	w.logger.Info(ctx, "Transcription completed: %d characters", len(text))
	return text, nil
}

// joinLines flattens whisper's one-segment-per-line output into running text.
func joinLines(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// checkAudio rejects files the backends cannot read before any work starts.
func checkAudio(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("open audio %s: %v: %w", path, err, ErrTranscription)
	}
	if info.IsDir() {
		return fmt.Errorf("audio %s is a directory: %w", path, ErrTranscription)
	}
	if !acquire.IsAudioFile(path) {
		return fmt.Errorf("audio %s has unsupported format: %w", path, ErrTranscription)
	}
	return nil
}
