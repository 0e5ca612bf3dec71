package booking

import "errors"

var ErrMissingField = errors.New("please fill in the date, start time and end time")

var ErrEndBeforeOrEqualStart = errors.New("end time must be after start time")

var ErrDurationTooShort = errors.New("a booking must last at least one hour")

var ErrDateInPast = errors.New("cannot book a field on a past date")

var ErrOutsideBusinessHours = errors.New("bookings are only available between 08:00 and 23:00")

var ErrMissingIdentity = errors.New("you must be logged in to book a field")

var ErrBookingNotFound = errors.New("booking not found")

var ErrFieldNotFound = errors.New("field not found")

var ErrFieldUnavailable = errors.New("field is not available")

var ErrInvalidField = errors.New("a field needs a name and a positive hourly price")

var ErrFieldHasBookings = errors.New("field has bookings and cannot be deleted")

var ErrSlotTaken = errors.New("this time slot is already booked")

var inputErrors = []error{
	ErrMissingField,
	ErrEndBeforeOrEqualStart,
	ErrDurationTooShort,
	ErrDateInPast,
	ErrOutsideBusinessHours,
	ErrMissingIdentity,
}

// IsInputError reports whether err is one of the locally detectable input errors.
func IsInputError(err error) bool {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
