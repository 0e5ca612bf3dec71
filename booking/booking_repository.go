package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolation = "23503"

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetFieldByID(ctx context.Context, id string) (Field, error) {
	sql := `
			SELECT id, name, sport, location, price_per_hour, description, available
			FROM "field-booking".field
			WHERE id=$1;
		`

	var field Field
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&field.ID,
		&field.Name,
		&field.Sport,
		&field.Location,
		&field.PricePerHour,
		&field.Description,
		&field.Available,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Field{}, ErrFieldNotFound
	}

	if err != nil {
		return Field{}, fmt.Errorf("failed to fetch field with id %v: %w", id, err)
	}

	return field, nil
}

func (r *Repository) InsertField(ctx context.Context, field Field) (Field, error) {
	sql := `
			INSERT INTO "field-booking".field(id, name, sport, location, price_per_hour, description, available)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`

	_, err := r.pool.Exec(ctx, sql,
		field.ID,
		field.Name,
		field.Sport,
		field.Location,
		field.PricePerHour,
		field.Description,
		field.Available,
	)

	if err != nil {
		return Field{}, fmt.Errorf("failed to insert field: %w", err)
	}

	return field, nil
}

func (r *Repository) UpdateField(ctx context.Context, field Field) (Field, error) {
	sql := `
			UPDATE "field-booking".field
			SET name=$2, sport=$3, location=$4, price_per_hour=$5, description=$6, available=$7
			WHERE id=$1;
		`

	tag, err := r.pool.Exec(ctx, sql,
		field.ID,
		field.Name,
		field.Sport,
		field.Location,
		field.PricePerHour,
		field.Description,
		field.Available,
	)

	if err != nil {
		return Field{}, fmt.Errorf("failed to update field with id %v: %w", field.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return Field{}, ErrFieldNotFound
	}

	return field, nil
}

// DeleteField refuses with ErrFieldHasBookings while any booking references the field.
func (r *Repository) DeleteField(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM "field-booking".field WHERE id=$1;`, id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return ErrFieldHasBookings
	}

	if err != nil {
		return fmt.Errorf("failed to delete field with id %v: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrFieldNotFound
	}

	return nil
}

// InsertBooking stores a confirmed booking unless a confirmed booking of the
// same field and date overlaps it. Attempts on one (field, date) are
// serialized by a transaction-scoped advisory lock.
func (r *Repository) InsertBooking(ctx context.Context, booking Record) (Record, error) {
	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return Record{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1 || '|' || $2));`, booking.FieldID, booking.Date.String())

	if err != nil {
		return Record{}, fmt.Errorf("failed to lock slot: %w", err)
	}

	probe := `
			SELECT EXISTS (
				SELECT 1 FROM "field-booking".booking
				WHERE field_id=$1 AND date=$2 AND status=$3
				AND start_minute < $5 AND end_minute > $4
			);
		`

	var taken bool
	err = tx.QueryRow(ctx, probe,
		booking.FieldID,
		booking.Date.String(),
		StatusConfirmed,
		int(booking.StartTime),
		int(booking.EndTime),
	).Scan(&taken)

	if err != nil {
		return Record{}, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if taken {
		return Record{}, ErrSlotTaken
	}

	insert := `
			INSERT INTO "field-booking".booking(
			id, field_id, user_id, date, start_minute, end_minute, total_price, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
		`

	_, err = tx.Exec(ctx, insert,
		booking.ID,
		booking.FieldID,
		booking.UserID,
		booking.Date.String(),
		int(booking.StartTime),
		int(booking.EndTime),
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
	)

	if err != nil {
		return Record{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Record{}, fmt.Errorf("failed to commit booking: %w", err)
	}

	return booking, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Record, error) {
	sql := `
			SELECT id, field_id, user_id, date, start_minute, end_minute, total_price, status, created_at
			FROM "field-booking".booking
			WHERE id=$1;
		`

	booking, err := scanRecord(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrBookingNotFound
	}

	if err != nil {
		return Record{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetBookingsPerUser(ctx context.Context, userID string) ([]Record, error) {
	sql := `
            SELECT id, field_id, user_id, date, start_minute, end_minute, total_price, status, created_at
            FROM "field-booking".booking
            WHERE user_id=$1
            ORDER BY date, start_minute;
        `

	rows, err := r.pool.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user '%v': %w", userID, err)
	}

	defer rows.Close()

	bookings := []Record{}

	for rows.Next() {
		booking, err := scanRecord(rows)

		if err != nil {
			return nil, fmt.Errorf("failed to scan bookings for user '%v': %w", userID, err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var booking Record
	var date string
	var start, end int

	err := row.Scan(
		&booking.ID,
		&booking.FieldID,
		&booking.UserID,
		&date,
		&start,
		&end,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err != nil {
		return Record{}, err
	}

	booking.Date = DateStamp(date)
	booking.StartTime = TimeOfDay(start)
	booking.EndTime = TimeOfDay(end)

	return booking, nil
}
