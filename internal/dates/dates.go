// Package dates holds the single calendar-day abstraction used across the
// whole application. Every streak, trend and validation computation goes
// through Key so that day arithmetic never touches wall-clock instants.
package dates

import (
	"errors"
	"regexp"
	"time"
)

const layout = "2006-01-02"

var ErrInvalidFormat = errors.New("invalid date format, expected YYYY-MM-DD")

var keyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Key is a calendar date with no time-zone component. Two keys are equal iff
// their string forms are equal; lexicographic order is chronological order.
type Key string

func Parse(raw string) (Key, error) {
	if !keyPattern.MatchString(raw) {
		return "", ErrInvalidFormat
	}
	if _, err := time.Parse(layout, raw); err != nil {
		return "", ErrInvalidFormat
	}
	return Key(raw), nil
}

func Today(location *time.Location) Key {
	if location == nil {
		location = time.UTC
	}
	return FromTime(time.Now().In(location))
}

func FromTime(value time.Time) Key {
	return Key(value.Format(layout))
}

func (key Key) String() string {
	return string(key)
}

// Time returns the key as midnight UTC. UTC has no daylight-saving
// transitions, which keeps day arithmetic exact.
func (key Key) Time() time.Time {
	parsed, err := time.Parse(layout, string(key))
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func (key Key) After(other Key) bool {
	return string(key) > string(other)
}

func (key Key) Before(other Key) bool {
	return string(key) < string(other)
}

// DayDiff returns the number of calendar days from b to a, positive when a
// is later. Both keys are anchored at UTC midnight before differencing, so
// the result is pure calendar arithmetic.
func DayDiff(a Key, b Key) int {
	return int(a.Time().Sub(b.Time()) / (24 * time.Hour))
}

func (key Key) AddDays(n int) Key {
	return FromTime(key.Time().AddDate(0, 0, n))
}

func IsFuture(key Key, today Key) bool {
	return key.After(today)
}

func (key Key) Weekday() time.Weekday {
	return key.Time().Weekday()
}

// StartOfWeek returns the most recent Sunday at or before key.
func StartOfWeek(key Key) Key {
	return key.AddDays(-int(key.Weekday()))
}
