package booking_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	bk "github.com/catalinarubies/field-booking/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, fieldID, userID, date string, start, end int) bk.Record {
	return bk.Record{
		ID:        id,
		FieldID:   fieldID,
		UserID:    userID,
		Date:      bk.DateStamp(date),
		StartTime: bk.TimeOfDay(start * 60),
		EndTime:   bk.TimeOfDay(end * 60),
		Status:    bk.StatusConfirmed,
	}
}

func TestMemoryRepositoryInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("overlap is rejected", func(t *testing.T) {
		repo := bk.NewMemoryRepository(field)

		_, err := repo.InsertBooking(ctx, record("1", "f-42", "u-1", "2025-06-14", 18, 20))
		require.NoError(t, err)

		_, err = repo.InsertBooking(ctx, record("2", "f-42", "u-2", "2025-06-14", 19, 21))
		require.ErrorIs(t, err, bk.ErrSlotTaken)
	})

	t.Run("adjacent windows are allowed", func(t *testing.T) {
		repo := bk.NewMemoryRepository(field)

		_, err := repo.InsertBooking(ctx, record("1", "f-42", "u-1", "2025-06-14", 18, 19))
		require.NoError(t, err)

		_, err = repo.InsertBooking(ctx, record("2", "f-42", "u-2", "2025-06-14", 19, 20))
		require.NoError(t, err)
	})

	t.Run("other field or date does not conflict", func(t *testing.T) {
		repo := bk.NewMemoryRepository(field)

		_, err := repo.InsertBooking(ctx, record("1", "f-42", "u-1", "2025-06-14", 18, 20))
		require.NoError(t, err)

		_, err = repo.InsertBooking(ctx, record("2", "f-43", "u-2", "2025-06-14", 18, 20))
		require.NoError(t, err)

		_, err = repo.InsertBooking(ctx, record("3", "f-42", "u-2", "2025-06-15", 18, 20))
		require.NoError(t, err)
	})

	t.Run("cancelled bookings free the slot", func(t *testing.T) {
		repo := bk.NewMemoryRepository(field)

		cancelled := record("1", "f-42", "u-1", "2025-06-14", 18, 20)
		cancelled.Status = "cancelled"

		_, err := repo.InsertBooking(ctx, cancelled)
		require.NoError(t, err)

		_, err = repo.InsertBooking(ctx, record("2", "f-42", "u-2", "2025-06-14", 18, 20))
		require.NoError(t, err)
	})

	t.Run("concurrent overlapping inserts have one winner", func(t *testing.T) {
		repo := bk.NewMemoryRepository(field)

		const attempts = 16
		var wg sync.WaitGroup
		errs := make(chan error, attempts)

		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.InsertBooking(ctx, record(fmt.Sprint(i), "f-42", fmt.Sprint("u-", i), "2025-06-14", 18, 20))
				errs <- err
			}()
		}

		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			require.ErrorIs(t, err, bk.ErrSlotTaken)
		}

		assert.Equal(t, 1, succeeded)
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := bk.NewMemoryRepository(field)
		cancelledCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.InsertBooking(cancelledCtx, record("1", "f-42", "u-1", "2025-06-14", 18, 20))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryRepositoryLookups(t *testing.T) {
	ctx := context.Background()
	repo := bk.NewMemoryRepository(field)

	for _, r := range []bk.Record{
		record("3", "f-42", "u-1", "2025-06-15", 10, 11),
		record("1", "f-42", "u-1", "2025-06-14", 18, 19),
		record("2", "f-42", "u-1", "2025-06-14", 9, 10),
		record("4", "f-42", "u-2", "2025-06-16", 9, 10),
	} {
		_, err := repo.InsertBooking(ctx, r)
		require.NoError(t, err)
	}

	got, err := repo.GetFieldByID(ctx, "f-42")
	require.NoError(t, err)
	assert.Equal(t, field, got)

	_, err = repo.GetFieldByID(ctx, "nope")
	require.ErrorIs(t, err, bk.ErrFieldNotFound)

	b, err := repo.GetBookingByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "u-2", b.UserID)

	_, err = repo.GetBookingByID(ctx, "nope")
	require.ErrorIs(t, err, bk.ErrBookingNotFound)

	bookings, err := repo.GetBookingsPerUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, []string{"2", "1", "3"}, []string{bookings[0].ID, bookings[1].ID, bookings[2].ID})

	none, err := repo.GetBookingsPerUser(ctx, "u-9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryRepositoryFields(t *testing.T) {
	ctx := context.Background()
	repo := bk.NewMemoryRepository()

	f := field
	_, err := repo.InsertField(ctx, f)
	require.NoError(t, err)

	_, err = repo.InsertField(ctx, f)
	require.Error(t, err)

	f.PricePerHour = 4500
	_, err = repo.UpdateField(ctx, f)
	require.NoError(t, err)

	got, err := repo.GetFieldByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), got.PricePerHour)

	_, err = repo.UpdateField(ctx, bk.Field{ID: "nope", Name: "x", PricePerHour: 1})
	require.ErrorIs(t, err, bk.ErrFieldNotFound)

	_, err = repo.InsertBooking(ctx, record("1", f.ID, "u-1", "2025-06-14", 18, 20))
	require.NoError(t, err)
	require.ErrorIs(t, repo.DeleteField(ctx, f.ID), bk.ErrFieldHasBookings)

	other := bk.Field{ID: "f-43", Name: "Court 2", PricePerHour: 3500, Available: true}
	_, err = repo.InsertField(ctx, other)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteField(ctx, other.ID))

	_, err = repo.GetFieldByID(ctx, other.ID)
	require.ErrorIs(t, err, bk.ErrFieldNotFound)
	require.ErrorIs(t, repo.DeleteField(ctx, other.ID), bk.ErrFieldNotFound)
}
