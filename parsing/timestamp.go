package parsing

import (
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/flightwx/bulletin"
)

// hourThreshold is how many hours a resolved time may drift from the anchor
// date before the month is shifted to compensate for a rollover.
const hourThreshold = 200

// daysIn returns the number of days in the month containing t.
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonths shifts t by whole months, clamping the day to the target month's
// length so March 31 minus one month lands on the last day of February.
func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := t.Day()
	if last := daysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// ParseDate resolves a ddhhZ or ddhhmmZ report timestamp against a reference
// date, handling hour overflow and month rollover. If timeOnly, the value is
// treated as hhmm on the reference day. A nil target anchors to the current
// UTC time. Returns nil when the token is not a resolvable timestamp.
func ParseDate(date string, timeOnly bool, target *time.Time) *time.Time {
	date = strings.TrimSuffix(date, "Z")
	if !IsDigits(date) {
		return nil
	}
	indexHour := 2
	if timeOnly {
		if len(date) != 4 {
			return nil
		}
		indexHour = 0
	} else {
		if len(date) == 4 {
			date += "00"
		}
		if len(date) != 6 {
			return nil
		}
	}
	var anchor time.Time
	if target != nil {
		anchor = time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		anchor = clock.Now().UTC()
	}
	day := anchor.Day()
	if !timeOnly {
		day, _ = strconv.Atoi(date[:2])
	}
	hour, _ := strconv.Atoi(date[indexHour : indexHour+2])
	minute, _ := strconv.Atoi(date[indexHour+2 : indexHour+4])
	// A day past the end of the anchor month means the report came from the
	// previous month. Shift once so the threshold check below can't repeat it.
	shifted := false
	if day > daysIn(anchor) {
		anchor = addMonths(anchor, -1)
		shifted = true
	}
	if day < 1 || day > daysIn(anchor) {
		return nil
	}
	guess := time.Date(anchor.Year(), anchor.Month(), day, hour%24, minute%60, 0, 0, time.UTC)
	if hour > 23 {
		guess = guess.AddDate(0, 0, 1)
	}
	if !shifted {
		hourdiff := guess.Sub(anchor).Hours()
		if hourdiff > hourThreshold {
			guess = addMonths(guess, -1)
		} else if hourdiff < -hourThreshold {
			guess = addMonths(guess, 1)
		}
	}
	return &guess
}

// MakeTimestamp pairs a raw report time token with its resolved instant, or
// returns nil for an empty token.
func MakeTimestamp(timestamp string, timeOnly bool, target *time.Time) *bulletin.Timestamp {
	if timestamp == "" {
		return nil
	}
	return &bulletin.Timestamp{Repr: timestamp, Time: ParseDate(timestamp, timeOnly, target)}
}
