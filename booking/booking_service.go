package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/mock_booking_service.go -package=mocks

type BookingRepository interface {
	GetFieldByID(ctx context.Context, id string) (Field, error)
	InsertBooking(ctx context.Context, booking Record) (Record, error)
	GetBookingByID(ctx context.Context, id string) (Record, error)
	GetBookingsPerUser(ctx context.Context, userID string) ([]Record, error)
}

type Notifier interface {
	BookingCreated(ctx context.Context, booking Record) error
}

type Service struct {
	repo     BookingRepository
	notifier Notifier
	clock    Clock
	logger   *slog.Logger
}

func NewService(repo BookingRepository, notifier Notifier, clock Clock) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
		logger:   slog.Default().With("component", "booking-service"),
	}
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Record, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *Service) FindBookingsPerUser(ctx context.Context, userID string) ([]Record, error) {
	return s.repo.GetBookingsPerUser(ctx, userID)
}

// CreateBooking re-validates the request against the server clock, prices it
// with the field's hourly rate and stores it. ErrSlotTaken is returned when a
// confirmed booking already overlaps the requested window.
func (s *Service) CreateBooking(ctx context.Context, in NewBooking) (Record, error) {
	now := s.clock.Now()

	req, err := Build(in.FieldID, in.UserID, in.Date, in.StartTime, in.EndTime, now)

	if err != nil {
		return Record{}, err
	}

	field, err := s.repo.GetFieldByID(ctx, req.FieldID())

	if err != nil {
		return Record{}, err
	}

	if !field.Available {
		return Record{}, ErrFieldUnavailable
	}

	priced, ok := Quote(req, field.PricePerHour)

	if !ok {
		return Record{}, fmt.Errorf("failed to price booking for field '%v'", field.ID)
	}

	booking, err := s.repo.InsertBooking(ctx, Record{
		ID:         uuid.NewString(),
		FieldID:    req.FieldID(),
		UserID:     req.UserID(),
		Date:       req.Date(),
		StartTime:  req.StartTime(),
		EndTime:    req.EndTime(),
		TotalPrice: priced.TotalPrice,
		Status:     StatusConfirmed,
		CreatedAt:  now.UTC(),
	})

	if err != nil {
		return Record{}, err
	}

	if err := s.notifier.BookingCreated(ctx, booking); err != nil {
		s.logger.Warn("failed to publish booking event", "booking", booking.ID, "err", err)
	}

	return booking, nil
}
