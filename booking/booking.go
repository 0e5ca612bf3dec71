package booking

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatusConfirmed is the only status that holds a slot. Any other status,
// e.g. "cancelled", leaves the window free.
const StatusConfirmed = "confirmed"

// Record is a booking as persisted by the conflict-aware store.
type Record struct {
	ID         string    `json:"confirmationId"`
	FieldID    string    `json:"field_id"`
	UserID     string    `json:"user_id"`
	Date       DateStamp `json:"date"`
	StartTime  TimeOfDay `json:"start_time"`
	EndTime    TimeOfDay `json:"end_time"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type Field struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Sport        string `json:"sport"`
	Location     string `json:"location"`
	PricePerHour int64  `json:"price_per_hour"`
	Description  string `json:"description"`
	Available    bool   `json:"available"`
}

// NewField is a field as submitted for creation. A nil Available means available.
type NewField struct {
	Name         string `json:"name" binding:"required"`
	Sport        string `json:"sport" binding:"required"`
	Location     string `json:"location" binding:"required"`
	PricePerHour int64  `json:"price_per_hour" binding:"required,gt=0"`
	Description  string `json:"description"`
	Available    *bool  `json:"available"`
}

// FieldUpdate changes only the attributes that are set.
type FieldUpdate struct {
	Name         *string `json:"name"`
	Sport        *string `json:"sport"`
	Location     *string `json:"location"`
	PricePerHour *int64  `json:"price_per_hour" binding:"omitempty,gt=0"`
	Description  *string `json:"description"`
	Available    *bool   `json:"available"`
}

// NewBooking is the raw reservation request as received over the wire.
type NewBooking struct {
	FieldID   string `json:"field_id"`
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// UnmarshalJSON accepts user_id as a JSON string or a JSON number.
func (b *NewBooking) UnmarshalJSON(data []byte) error {
	type plain NewBooking

	var body struct {
		plain
		UserID json.RawMessage `json:"user_id"`
	}

	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}

	*b = NewBooking(body.plain)

	if len(body.UserID) == 0 || string(body.UserID) == "null" {
		return nil
	}

	if err := json.Unmarshal(body.UserID, &b.UserID); err == nil {
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(body.UserID, &number); err != nil {
		return fmt.Errorf("user_id must be a string or a number: %w", err)
	}

	b.UserID = number.String()

	return nil
}

func (r Record) overlaps(other Record) bool {
	return r.FieldID == other.FieldID && r.Date == other.Date &&
		r.StartTime < other.EndTime && other.StartTime < r.EndTime
}
