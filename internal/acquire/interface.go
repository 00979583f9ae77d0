package acquire

import (
	"context"
	"errors"
)

var (
	// ErrAudioNotFound means a download finished but produced no audio file.
	ErrAudioNotFound = errors.New("audio not found")
	// ErrUnsupportedFormat means an uploaded file is not one of the accepted audio types.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Downloader fetches the audio track of a remote recording into a local file.
type Downloader interface {
	Download(ctx context.Context, url string) (string, error)
}
