package clock

import "time"

// Clock allows injecting time into the chat service. The chatbot reasons in
// whole calendar days, so Today is the primary operation.
type Clock interface {
	Now() time.Time
	// Today returns midnight UTC of the current day.
	Today() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Today() time.Time {
	return truncateToDay(time.Now().UTC())
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func (f fixedClock) Today() time.Time {
	return truncateToDay(f.now)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
