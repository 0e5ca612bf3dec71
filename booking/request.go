package booking

import (
	"encoding/json"
	"strings"
	"time"
)

// Request is a validated reservation request. It is built fresh for every
// submission attempt and cannot be changed once built.
type Request struct {
	fieldID string
	userID  string
	date    DateStamp
	start   TimeOfDay
	end     TimeOfDay
}

func Build(fieldID, userID, date, startTime, endTime string, now time.Time) (Request, error) {
	userID = strings.TrimSpace(userID)
	fieldID = strings.TrimSpace(fieldID)

	if len(userID) == 0 {
		return Request{}, ErrMissingIdentity
	}

	if len(fieldID) == 0 {
		return Request{}, ErrMissingField
	}

	day, start, end, err := parseRange(date, startTime, endTime, now)
	if err != nil {
		return Request{}, err
	}

	return Request{
		fieldID: fieldID,
		userID:  userID,
		date:    day,
		start:   start,
		end:     end,
	}, nil
}

func (r Request) FieldID() string      { return r.fieldID }
func (r Request) UserID() string       { return r.userID }
func (r Request) Date() DateStamp      { return r.date }
func (r Request) StartTime() TimeOfDay { return r.start }
func (r Request) EndTime() TimeOfDay   { return r.end }

func (r Request) DurationMinutes() int {
	return int(r.end - r.start)
}

type requestBody struct {
	FieldID   string `json:"field_id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (r Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(requestBody{
		FieldID:   r.fieldID,
		UserID:    r.userID,
		Date:      r.date.String(),
		StartTime: r.start.String(),
		EndTime:   r.end.String(),
	})
}
