package transcribe

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Background runs t on a worker goroutine and blocks the caller on the result only.
// Errors that do not already wrap ErrTranscription are wrapped with it.
func Background(ctx context.Context, t Transcriber, audioPath string) (string, error) {
	var text string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		text, err = t.Transcribe(gctx, audioPath)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrTranscription) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrTranscription, err)
	}
	return text, nil
}
