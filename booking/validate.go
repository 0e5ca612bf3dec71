package booking

import (
	"strings"
	"time"
)

const (
	MinDurationMinutes = 60
	OpeningHour        = 8
	ClosingTime        = TimeOfDay(23 * 60)
)

// Validate checks a proposed (date, start, end) triple. Rules run in a fixed
// order and the first failing one is returned.
func Validate(date, startTime, endTime string, now time.Time) error {
	_, _, _, err := parseRange(date, startTime, endTime, now)
	return err
}

func parseRange(date, startTime, endTime string, now time.Time) (DateStamp, TimeOfDay, TimeOfDay, error) {
	date = strings.TrimSpace(date)
	startTime = strings.TrimSpace(startTime)
	endTime = strings.TrimSpace(endTime)

	if len(date) == 0 || len(startTime) == 0 || len(endTime) == 0 {
		return "", 0, 0, ErrMissingField
	}

	day, err := ParseDateStamp(date)
	if err != nil {
		return "", 0, 0, ErrMissingField
	}

	start, err := ParseTimeOfDay(startTime)
	if err != nil {
		return "", 0, 0, ErrMissingField
	}

	end, err := ParseTimeOfDay(endTime)
	if err != nil {
		return "", 0, 0, ErrMissingField
	}

	if end <= start {
		return "", 0, 0, ErrEndBeforeOrEqualStart
	}

	if end-start < MinDurationMinutes {
		return "", 0, 0, ErrDurationTooShort
	}

	if day.Before(Today(now)) {
		return "", 0, 0, ErrDateInPast
	}

	if start.Hour() < OpeningHour || end > ClosingTime {
		return "", 0, 0, ErrOutsideBusinessHours
	}

	return day, start, end, nil
}
