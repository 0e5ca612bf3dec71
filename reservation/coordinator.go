package reservation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/catalinarubies/field-booking/booking"
	"github.com/catalinarubies/field-booking/fieldsapi"
	"github.com/catalinarubies/field-booking/session"
)

//go:generate mockgen -source=coordinator.go -destination=mocks/mock_coordinator.go -package=mocks

type BookingsClient interface {
	CreateBooking(ctx context.Context, token string, req booking.Request) (fieldsapi.Confirmation, error)
}

type SessionStore interface {
	Clear()
}

// Coordinator turns one submission attempt into an Outcome.
type Coordinator struct {
	client   BookingsClient
	sessions SessionStore
	logger   *slog.Logger
}

func NewCoordinator(client BookingsClient, sessions SessionStore) *Coordinator {
	return &Coordinator{
		client:   client,
		sessions: sessions,
		logger:   slog.Default().With("component", "reservation-coordinator"),
	}
}

// Submit sends req exactly once. It never retries, including on server errors.
func (c *Coordinator) Submit(ctx context.Context, sess session.Session, req booking.Request) booking.Outcome {
	outcome := c.submit(ctx, sess, req)
	c.logOutcome(req, outcome)
	return outcome
}

// SubmitAsync runs Submit in its own goroutine. The channel is buffered so a
// result that arrives after the caller stopped listening is dropped.
func (c *Coordinator) SubmitAsync(ctx context.Context, sess session.Session, req booking.Request) <-chan booking.Outcome {
	out := make(chan booking.Outcome, 1)

	go func() {
		defer close(out)
		out <- c.Submit(ctx, sess, req)
	}()

	return out
}

func (c *Coordinator) submit(ctx context.Context, sess session.Session, req booking.Request) booking.Outcome {
	confirmation, err := c.client.CreateBooking(ctx, sess.Token, req)

	if err == nil {
		return booking.Accepted{
			ConfirmationID: confirmation.ConfirmationID,
			Booking:        confirmation.Echo,
		}
	}

	if errors.Is(err, fieldsapi.ErrUnreadableConfirmation) {
		c.logger.Warn("booking accepted without a readable confirmation", "field", req.FieldID(), "err", err)
		return booking.Accepted{Booking: booking.EchoOf(req)}
	}

	var resErr *fieldsapi.ResponseError

	if !errors.As(err, &resErr) {
		return booking.Rejected{Reason: booking.ServerError, Cause: err}
	}

	switch resErr.StatusCode {
	case http.StatusBadRequest:
		return booking.Rejected{Reason: booking.InvalidInput, Message: resErr.Message, Cause: err}
	case http.StatusUnauthorized:
		c.sessions.Clear()
		return booking.Rejected{Reason: booking.SessionExpired, Message: resErr.Message, Cause: err}
	case http.StatusConflict:
		return booking.Rejected{Reason: booking.SlotTaken, Message: resErr.Message, Cause: err}
	default:
		return booking.Rejected{Reason: booking.ServerError, Message: resErr.Message, Cause: err}
	}
}

func (c *Coordinator) logOutcome(req booking.Request, outcome booking.Outcome) {
	attrs := []any{
		"field", req.FieldID(),
		"user", req.UserID(),
		"date", req.Date().String(),
		"start", req.StartTime().String(),
		"end", req.EndTime().String(),
	}

	switch o := outcome.(type) {
	case booking.Accepted:
		c.logger.Info("booking accepted", append(attrs, "confirmation", o.ConfirmationID)...)
	case booking.Rejected:
		attrs = append(attrs, "reason", o.Reason.String(), "retryable", o.Reason.Retryable())

		if o.Cause != nil {
			attrs = append(attrs, "err", o.Cause)
		}

		switch o.Reason {
		case booking.ServerError:
			c.logger.Error("booking failed", attrs...)
		case booking.SessionExpired:
			c.logger.Warn("booking rejected", attrs...)
		default:
			c.logger.Info("booking rejected", attrs...)
		}
	}
}
