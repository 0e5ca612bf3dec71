package booking

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// MemoryRepository keeps fields and bookings in process. Inserts are
// serialized by a single mutex, which gives the same at-most-one guarantee
// per overlapping window as the Postgres repository.
type MemoryRepository struct {
	mu       sync.RWMutex
	fields   map[string]Field
	byID     map[string]Record
	bySlot   map[string][]Record // field|date -> bookings
	byUserID map[string][]string
}

func NewMemoryRepository(fields ...Field) *MemoryRepository {
	r := &MemoryRepository{
		fields:   make(map[string]Field),
		byID:     make(map[string]Record),
		bySlot:   make(map[string][]Record),
		byUserID: make(map[string][]string),
	}

	for _, field := range fields {
		r.fields[field.ID] = field
	}

	return r
}

func slotKey(fieldID string, date DateStamp) string {
	return fieldID + "|" + date.String()
}

func (r *MemoryRepository) GetFieldByID(ctx context.Context, id string) (Field, error) {
	if err := ctx.Err(); err != nil {
		return Field{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	field, ok := r.fields[id]
	if !ok {
		return Field{}, ErrFieldNotFound
	}

	return field, nil
}

func (r *MemoryRepository) InsertField(ctx context.Context, field Field) (Field, error) {
	if err := ctx.Err(); err != nil {
		return Field{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fields[field.ID]; ok {
		return Field{}, fmt.Errorf("field with id %v already exists", field.ID)
	}

	r.fields[field.ID] = field

	return field, nil
}

func (r *MemoryRepository) UpdateField(ctx context.Context, field Field) (Field, error) {
	if err := ctx.Err(); err != nil {
		return Field{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fields[field.ID]; !ok {
		return Field{}, ErrFieldNotFound
	}

	r.fields[field.ID] = field

	return field, nil
}

func (r *MemoryRepository) DeleteField(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fields[id]; !ok {
		return ErrFieldNotFound
	}

	for _, booking := range r.byID {
		if booking.FieldID == id {
			return ErrFieldHasBookings
		}
	}

	delete(r.fields, id)

	return nil
}

func (r *MemoryRepository) InsertBooking(ctx context.Context, booking Record) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(booking.FieldID, booking.Date)

	for _, existing := range r.bySlot[key] {
		if existing.Status == StatusConfirmed && existing.overlaps(booking) {
			return Record{}, ErrSlotTaken
		}
	}

	r.bySlot[key] = append(r.bySlot[key], booking)
	r.byID[booking.ID] = booking
	r.byUserID[booking.UserID] = append(r.byUserID[booking.UserID], booking.ID)

	return booking, nil
}

func (r *MemoryRepository) GetBookingByID(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return Record{}, ErrBookingNotFound
	}

	return booking, nil
}

func (r *MemoryRepository) GetBookingsPerUser(ctx context.Context, userID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := []Record{}

	for _, id := range r.byUserID[userID] {
		bookings = append(bookings, r.byID[id])
	}

	slices.SortFunc(bookings, func(a, b Record) int {
		if c := strings.Compare(a.Date.String(), b.Date.String()); c != 0 {
			return c
		}
		return int(a.StartTime - b.StartTime)
	})

	return bookings, nil
}
