package booking

// Outcome is the result of one submission: either Accepted or Rejected.
type Outcome interface {
	outcome()
}

// Echo is the booking as the server reported it back, kept for display.
type Echo struct {
	FieldID    string `json:"field_id"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	TotalPrice int64  `json:"total_price"`
	Status     string `json:"status"`
}

func EchoOf(req Request) Echo {
	return Echo{
		FieldID:   req.FieldID(),
		UserID:    req.UserID(),
		Date:      req.Date().String(),
		StartTime: req.StartTime().String(),
		EndTime:   req.EndTime().String(),
	}
}

type Accepted struct {
	ConfirmationID string
	Booking        Echo
}

type Rejected struct {
	Reason Reason
	// Message is the server-provided text. Only InvalidInput shows it verbatim.
	Message string
	// Cause is kept for logging and never shown to the end user.
	Cause error
}

func (Accepted) outcome() {}
func (Rejected) outcome() {}

type Reason int

const (
	InvalidInput Reason = iota + 1
	SlotTaken
	SessionExpired
	ServerError
)

func (r Reason) String() string {
	switch r {
	case InvalidInput:
		return "invalid_input"
	case SlotTaken:
		return "slot_taken"
	case SessionExpired:
		return "session_expired"
	case ServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// Retryable is true only for ServerError, and then only as a manual retry.
func (r Reason) Retryable() bool {
	return r == ServerError
}

// UserMessage is the text shown to the person booking.
func (r Rejected) UserMessage() string {
	switch r.Reason {
	case InvalidInput:
		if len(r.Message) != 0 {
			return r.Message
		}
		return "The booking details were not accepted, please check them and try again."
	case SlotTaken:
		return "This time slot was just booked by someone else, please choose another time."
	case SessionExpired:
		return "Your session has expired, please log in again."
	default:
		return "We could not complete your booking right now, please try again later."
	}
}
