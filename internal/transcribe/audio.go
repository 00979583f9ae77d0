package transcribe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// prepareAudio converts audioPath to 16 kHz mono PCM WAV in outDir, the only
// input whisper.cpp decodes reliably. mp3 and m4a recordings need this step.
func (w *implWhisper) prepareAudio(ctx context.Context, audioPath, outDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	wavPath := filepath.Join(outDir, base+"_16k.wav")

	w.logger.Info(ctx, "Converting audio for whisper: %s", audioPath)

	// -vn: drop any embedded cover art
	// -ar 16000 -ac 1: whisper's native sample rate, mono
	args := []string{
		"-y",
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		wavPath,
	}

	if _, err := w.executor.Execute(ctx, w.cfg.FFmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %v: %w", err, ErrTranscription)
	}
	return wavPath, nil
}
