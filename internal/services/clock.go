package services

import "time"

// Clock is the single source of "now" for ledger mutations.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }

func NewClock() Clock {
	return RealClock{}
}
