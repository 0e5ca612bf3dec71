package booking

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=field_service.go -destination=mocks/mock_field_service.go -package=mocks

const (
	FieldCreated = "create"
	FieldUpdated = "update"
	FieldDeleted = "delete"
)

type FieldRepository interface {
	GetFieldByID(ctx context.Context, id string) (Field, error)
	InsertField(ctx context.Context, field Field) (Field, error)
	UpdateField(ctx context.Context, field Field) (Field, error)
	DeleteField(ctx context.Context, id string) error
}

type FieldNotifier interface {
	FieldChanged(ctx context.Context, operation string, fieldID string) error
}

type FieldService struct {
	repo     FieldRepository
	notifier FieldNotifier
	logger   *slog.Logger
}

func NewFieldService(repo FieldRepository, notifier FieldNotifier) *FieldService {
	return &FieldService{
		repo:     repo,
		notifier: notifier,
		logger:   slog.Default().With("component", "field-service"),
	}
}

func (s *FieldService) FindFieldByID(ctx context.Context, id string) (Field, error) {
	return s.repo.GetFieldByID(ctx, id)
}

func (s *FieldService) CreateField(ctx context.Context, in NewField) (Field, error) {
	field := Field{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Sport:        strings.TrimSpace(in.Sport),
		Location:     strings.TrimSpace(in.Location),
		PricePerHour: in.PricePerHour,
		Description:  in.Description,
		Available:    in.Available == nil || *in.Available,
	}

	if err := checkField(field); err != nil {
		return Field{}, err
	}

	inserted, err := s.repo.InsertField(ctx, field)

	if err != nil {
		return Field{}, err
	}

	s.notify(ctx, FieldCreated, inserted.ID)

	return inserted, nil
}

// UpdateField applies the set attributes of in on top of the stored field.
func (s *FieldService) UpdateField(ctx context.Context, id string, in FieldUpdate) (Field, error) {
	field, err := s.repo.GetFieldByID(ctx, id)

	if err != nil {
		return Field{}, err
	}

	if in.Name != nil {
		field.Name = strings.TrimSpace(*in.Name)
	}
	if in.Sport != nil {
		field.Sport = strings.TrimSpace(*in.Sport)
	}
	if in.Location != nil {
		field.Location = strings.TrimSpace(*in.Location)
	}
	if in.PricePerHour != nil {
		field.PricePerHour = *in.PricePerHour
	}
	if in.Description != nil {
		field.Description = *in.Description
	}
	if in.Available != nil {
		field.Available = *in.Available
	}

	if err := checkField(field); err != nil {
		return Field{}, err
	}

	updated, err := s.repo.UpdateField(ctx, field)

	if err != nil {
		return Field{}, err
	}

	s.notify(ctx, FieldUpdated, updated.ID)

	return updated, nil
}

// DeleteField removes a field. Fields with bookings are kept, mark them
// unavailable instead.
func (s *FieldService) DeleteField(ctx context.Context, id string) error {
	if err := s.repo.DeleteField(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, FieldDeleted, id)

	return nil
}

func (s *FieldService) notify(ctx context.Context, operation, fieldID string) {
	if err := s.notifier.FieldChanged(ctx, operation, fieldID); err != nil {
		s.logger.Warn("failed to publish field event", "field", fieldID, "operation", operation, "err", err)
	}
}

func checkField(field Field) error {
	if len(field.Name) == 0 || field.PricePerHour <= 0 {
		return ErrInvalidField
	}
	return nil
}
