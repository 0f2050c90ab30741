package parsing

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze time via SetClock.
// Report timestamps carry only a day and hour, so resolving them without a
// caller-supplied issue date needs a current-time anchor.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for timestamp resolution. Pass nil to reset
// to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
