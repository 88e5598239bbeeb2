package transport

import "time"

// RetryPolicy decides how a channel recovers from an unexpected close.
// It is a pure value so the reconnect behavior can be tested without a
// socket. Backoff is linear in the attempt number; a mobile operator can
// always force a fresh session by reopening the screen, so exponential
// growth buys nothing here.
type RetryPolicy struct {
	MaxAttempts int
	Step        time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, Step: 3 * time.Second}
}

// Delay returns how long to wait before the given attempt (1-based).
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}
	return time.Duration(attempt) * p.Step
}

// Exhausted reports whether no further attempt is allowed after the
// given number of attempts already made.
func (p RetryPolicy) Exhausted(attempts int) bool {
	return attempts >= p.MaxAttempts
}
