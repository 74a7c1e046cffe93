package interceptor

import "time"

// Clock is the time source used by Timestamp and ResponseTime.
type Clock interface {
	// Now returns the current wall-clock time.
	Now() time.Time
	// Mark returns a monotonic reading in milliseconds. Only differences
	// between two marks are meaningful.
	Mark() float64
}

type systemClock struct {
	origin time.Time
}

// SystemClock returns a Clock backed by the time package. Marks are measured
// from the moment SystemClock was called, on the monotonic clock.
func SystemClock() Clock {
	return systemClock{origin: time.Now()}
}

func (c systemClock) Now() time.Time { return time.Now() }

func (c systemClock) Mark() float64 {
	return float64(time.Since(c.origin).Nanoseconds()) / float64(time.Millisecond)
}

func orSystem(c Clock) Clock {
	if c == nil {
		return SystemClock()
	}
	return c
}
