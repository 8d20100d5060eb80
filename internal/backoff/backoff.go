// Package backoff provides interruptible waits and a doubling delay
// schedule with a cap.
package backoff

import (
	"context"
	"time"
)

// Sleep waits for d or until ctx is cancelled, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Backoff yields successive wait durations, doubling from the initial
// delay up to the cap. Not safe for concurrent use.
type Backoff struct {
	next time.Duration
	max  time.Duration
}

// New creates a schedule starting at initial and capped at max.
func New(initial, max time.Duration) *Backoff {
	if initial <= 0 {
		initial = time.Millisecond
	}
	if max < initial {
		max = initial
	}
	return &Backoff{next: initial, max: max}
}

// Next returns the current delay and advances the schedule.
func (b *Backoff) Next() time.Duration {
	d := b.next
	b.next *= 2
	if b.next > b.max {
		b.next = b.max
	}
	return d
}
