package game

import "time"

// Clock is the engine's only time source. Injected so tests drive time
// explicitly instead of sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock source used in production.
func SystemClock() Clock { return systemClock{} }
