package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// BookingRepo persists bookings. Book and Cancel run inside transactions
// that lock the affected rows, so two clients racing for the same slot
// resolve to exactly one winner.
type BookingRepo struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Book atomically claims the slot for the user. It fails with
// ErrSlotNotFound, ErrSlotTaken or ErrAlreadyBooked without changing
// anything.
func (r *BookingRepo) Book(ctx context.Context, slotID, userID int64, username string) (Booking, Slot, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return Booking{}, Slot{}, fmt.Errorf("begin booking tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var slot Slot
	err = tx.GetContext(ctx, &slot,
		`SELECT id, date, time, booked FROM slots WHERE id = $1 FOR UPDATE`, slotID)
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, Slot{}, ErrSlotNotFound
	}
	if err != nil {
		return Booking{}, Slot{}, fmt.Errorf("lock slot %d: %w", slotID, err)
	}
	if slot.Booked {
		return Booking{}, Slot{}, ErrSlotTaken
	}

	var active bool
	err = tx.GetContext(ctx, &active,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE user_id = $1)`, userID)
	if err != nil {
		return Booking{}, Slot{}, fmt.Errorf("check active booking: %w", err)
	}
	if active {
		return Booking{}, Slot{}, ErrAlreadyBooked
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE slots SET booked = TRUE WHERE id = $1`, slotID); err != nil {
		return Booking{}, Slot{}, fmt.Errorf("mark slot booked: %w", err)
	}

	var booking Booking
	err = tx.GetContext(ctx, &booking,
		`INSERT INTO bookings (user_id, username, slot_id) VALUES ($1, $2, $3)
		 RETURNING id, user_id, username, slot_id, reminder_24, reminder_1`,
		userID, username, slotID)
	if err != nil {
		return Booking{}, Slot{}, fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Booking{}, Slot{}, fmt.Errorf("commit booking tx: %w", err)
	}
	slot.Booked = true
	return booking, slot, nil
}

// Cancel removes the user's active booking and frees its slot. The freed
// slot is returned so the caller can show it. Fails with ErrNoActiveBooking.
func (r *BookingRepo) Cancel(ctx context.Context, userID int64) (Slot, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return Slot{}, fmt.Errorf("begin cancel tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var booking Booking
	err = tx.GetContext(ctx, &booking,
		`SELECT id, user_id, username, slot_id, reminder_24, reminder_1
		 FROM bookings WHERE user_id = $1 ORDER BY id LIMIT 1 FOR UPDATE`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return Slot{}, ErrNoActiveBooking
	}
	if err != nil {
		return Slot{}, fmt.Errorf("lock booking for user %d: %w", userID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM bookings WHERE id = $1`, booking.ID); err != nil {
		return Slot{}, fmt.Errorf("delete booking %d: %w", booking.ID, err)
	}

	var slot Slot
	err = tx.GetContext(ctx, &slot,
		`UPDATE slots SET booked = FALSE WHERE id = $1
		 RETURNING id, date, time, booked`, booking.SlotID)
	if err != nil {
		return Slot{}, fmt.Errorf("free slot %d: %w", booking.SlotID, err)
	}

	if err := tx.Commit(); err != nil {
		return Slot{}, fmt.Errorf("commit cancel tx: %w", err)
	}
	return slot, nil
}

// ListWithSlots returns all bookings joined with their slots, as scanned
// by the reminder loop.
func (r *BookingRepo) ListWithSlots(ctx context.Context) ([]BookingSlot, error) {
	var rows []BookingSlot
	err := r.db.SelectContext(ctx, &rows,
		`SELECT b.id, b.user_id, b.username, b.slot_id, b.reminder_24, b.reminder_1,
		        s.date, s.time
		 FROM bookings b JOIN slots s ON s.id = b.slot_id
		 ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("select bookings with slots: %w", err)
	}
	return rows, nil
}

// MarkReminder24 records that the day-before reminder was delivered.
func (r *BookingRepo) MarkReminder24(ctx context.Context, bookingID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET reminder_24 = TRUE WHERE id = $1`, bookingID); err != nil {
		return fmt.Errorf("mark reminder_24 for booking %d: %w", bookingID, err)
	}
	return nil
}

// MarkReminder1 records that the hour-before reminder was delivered.
func (r *BookingRepo) MarkReminder1(ctx context.Context, bookingID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET reminder_1 = TRUE WHERE id = $1`, bookingID); err != nil {
		return fmt.Errorf("mark reminder_1 for booking %d: %w", bookingID, err)
	}
	return nil
}
