package session

import "context"

// Guard admits one run at a time.
type Guard struct {
	ch chan struct{}
}

// NewGuard creates an idle Guard.
func NewGuard() *Guard {
	return &Guard{ch: make(chan struct{}, 1)}
}

// TryAcquire takes the slot without waiting, or returns ErrRunInProgress.
func (g *Guard) TryAcquire() error {
	select {
	case g.ch <- struct{}{}:
		return nil
	default:
		return ErrRunInProgress
	}
}

// Acquire waits for the slot until ctx is done.
func (g *Guard) Acquire(ctx context.Context) error {
	select {
	case g.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees the slot. Releasing an idle Guard is a no-op.
func (g *Guard) Release() {
	select {
	case <-g.ch:
	default:
	}
}
