package clock

import (
	"errors"
	"time"
)

// Backoff is a capped exponential retry policy shared by every ledger poller.
type Backoff struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Factor       float64
}

// DefaultBackoff polls up to 10 times starting at 1s, growing 1.5x, capped at 5s.
func DefaultBackoff() Backoff {
	return Backoff{
		MaxAttempts:  10,
		InitialDelay: time.Second,
		MaxDelay:     5 * time.Second,
		Factor:       1.5,
	}
}

// Validate reports whether the policy can be used.
func (b Backoff) Validate() error {
	if b.MaxAttempts < 1 {
		return errors.New("backoff max attempts must be positive")
	}
	if b.InitialDelay < 0 || b.MaxDelay < 0 {
		return errors.New("backoff delays must not be negative")
	}
	if b.Factor < 1 {
		return errors.New("backoff factor must be at least 1")
	}
	return nil
}

// Delay returns the wait before the retry that follows the given failed attempt (1-based).
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := float64(b.InitialDelay)
	for i := 1; i < attempt; i++ {
		d *= b.Factor
		if b.MaxDelay > 0 && d >= float64(b.MaxDelay) {
			return b.MaxDelay
		}
	}
	if b.MaxDelay > 0 && time.Duration(d) > b.MaxDelay {
		return b.MaxDelay
	}
	return time.Duration(d)
}

// Budget is the total time spent sleeping when every attempt fails.
func (b Backoff) Budget() time.Duration {
	var total time.Duration
	for attempt := 1; attempt < b.MaxAttempts; attempt++ {
		total += b.Delay(attempt)
	}
	return total
}
