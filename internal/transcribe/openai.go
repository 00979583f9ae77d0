package transcribe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Transcribe uploads the audio file to audio/transcriptions and returns the text field.
func (o *implOpenAI) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := checkAudio(audioPath); err != nil {
		return "", err
	}

	o.logger.Info(ctx, "Uploading %s for transcription (model %s)", filepath.Base(audioPath), o.model)

	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcribe: %v: %w", err, ErrTranscription)
	}

	text := strings.TrimSpace(resp.Text)
	o.logger.Info(ctx, "Transcription completed: %d characters", len(text))
	return text, nil
}
