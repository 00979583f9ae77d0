package transcribe

import (
	"context"
	"errors"
)

// ErrTranscription wraps every failure to turn an audio file into text.
var ErrTranscription = errors.New("transcription failed")

// Transcriber converts an audio file to its full transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
