package booking

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed in minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)

	if err != nil {
		return 0, fmt.Errorf("invalid time of day '%v': %w", s, err)
	}

	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// DateStamp is a calendar date in ISO form (YYYY-MM-DD). String order is chronological order.
type DateStamp string

func ParseDateStamp(s string) (DateStamp, error) {
	d, err := time.Parse(time.DateOnly, s)

	if err != nil {
		return "", fmt.Errorf("invalid date '%v': %w", s, err)
	}

	return DateStamp(d.Format(time.DateOnly)), nil
}

// Today returns the date of now in now's own location.
func Today(now time.Time) DateStamp {
	return DateStamp(now.Format(time.DateOnly))
}

func (d DateStamp) Before(other DateStamp) bool {
	return d < other
}

func (d DateStamp) String() string {
	return string(d)
}

type Clock interface {
	Now() time.Time
}

// ZonedClock reports the current time in a fixed location, so "today" follows the venue's calendar.
type ZonedClock struct {
	Location *time.Location
}

func (c ZonedClock) Now() time.Time { return time.Now().In(c.Location) }
