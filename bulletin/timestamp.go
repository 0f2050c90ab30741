package bulletin

import "time"

// Timestamp pairs a raw report time token with its resolved UTC instant.
// Time is nil when the token could not be resolved.
type Timestamp struct {
	Repr string
	Time *time.Time
}
