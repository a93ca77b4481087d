// Package service holds the salon business rules on top of the storage
// repositories: slot booking, cancellation, reminder delivery and
// gallery paging.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"salonbot/core/logger"
	"salonbot/salon/storage"
)

// ErrInvalidSlotText is returned when admin slot input does not parse as
// a real calendar date and time.
var ErrInvalidSlotText = errors.New("invalid slot text")

// SlotStore is the slice of storage the booking service needs for slots.
type SlotStore interface {
	Create(ctx context.Context, date, clock string) (storage.Slot, error)
	ListFree(ctx context.Context) ([]storage.Slot, error)
}

// BookingStore is the slice of storage the booking service needs for
// bookings.
type BookingStore interface {
	Book(ctx context.Context, slotID, userID int64, username string) (storage.Booking, storage.Slot, error)
	Cancel(ctx context.Context, userID int64) (storage.Slot, error)
}

// Notifier delivers out-of-band notifications to the salon admins.
// Implementations must not block the caller.
type Notifier interface {
	NotifyAdmins(ctx context.Context, text string)
}

// Booking implements slot lifecycle and the booking critical section.
type Booking struct {
	slots    SlotStore
	bookings BookingStore
	notifier Notifier
	loc      *time.Location
}

func NewBooking(slots SlotStore, bookings BookingStore, notifier Notifier, loc *time.Location) *Booking {
	if loc == nil {
		loc = time.Local
	}
	return &Booking{slots: slots, bookings: bookings, notifier: notifier, loc: loc}
}

// CreateSlot validates and stores admin slot input ("DD.MM.YYYY HH:MM").
func (s *Booking) CreateSlot(ctx context.Context, input string) (storage.Slot, error) {
	date, clock, err := storage.ParseSlotText(input)
	if err != nil {
		return storage.Slot{}, fmt.Errorf("%w: %v", ErrInvalidSlotText, err)
	}
	slot, err := s.slots.Create(ctx, date, clock)
	if err != nil {
		return storage.Slot{}, err
	}
	logger.LogEvent(ctx, logger.SVCBooking, slog.LevelInfo, "slot.created",
		slog.Int64("slot_id", slot.ID),
		slog.String("status", "ok"),
	)
	return slot, nil
}

// FreeSlots returns unbooked slots ordered by their appointment instant.
// Slots whose stored text no longer parses sort last, in insertion order.
func (s *Booking) FreeSlots(ctx context.Context) ([]storage.Slot, error) {
	slots, err := s.slots.ListFree(ctx)
	if err != nil {
		return nil, err
	}
	type keyed struct {
		slot storage.Slot
		at   time.Time
		ok   bool
	}
	keys := make([]keyed, len(slots))
	for i, slot := range slots {
		at, err := slot.AppointmentAt(s.loc)
		keys[i] = keyed{slot: slot, at: at, ok: err == nil}
	}
	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].ok != keys[j].ok {
			return keys[i].ok
		}
		if !keys[i].ok {
			return false
		}
		return keys[i].at.Before(keys[j].at)
	})
	for i, k := range keys {
		slots[i] = k.slot
	}
	return slots, nil
}

// Book claims the slot for the user and notifies the admins on success.
func (s *Booking) Book(ctx context.Context, slotID, userID int64, username string) (storage.Slot, error) {
	booking, slot, err := s.bookings.Book(ctx, slotID, userID, username)
	if err != nil {
		logger.LogEvent(ctx, logger.SVCBooking, slog.LevelInfo, "book.rejected",
			slog.Int64("slot_id", slotID),
			slog.Int64("user_id", userID),
			slog.String("err_code", bookErrCode(err)),
		)
		return storage.Slot{}, err
	}
	logger.LogEvent(ctx, logger.SVCBooking, slog.LevelInfo, "book.ok",
		slog.Int64("slot_id", slot.ID),
		slog.Int64("booking_id", booking.ID),
		slog.Int64("user_id", userID),
	)
	if s.notifier != nil {
		who := username
		if who == "" {
			who = fmt.Sprintf("id %d", userID)
		}
		s.notifier.NotifyAdmins(ctx,
			fmt.Sprintf("📅 Новая запись: %s на %s", who, slot.Label()))
	}
	return slot, nil
}

// Cancel drops the user's active booking and frees its slot.
func (s *Booking) Cancel(ctx context.Context, userID int64) (storage.Slot, error) {
	slot, err := s.bookings.Cancel(ctx, userID)
	if err != nil {
		return storage.Slot{}, err
	}
	logger.LogEvent(ctx, logger.SVCBooking, slog.LevelInfo, "cancel.ok",
		slog.Int64("slot_id", slot.ID),
		slog.Int64("user_id", userID),
	)
	if s.notifier != nil {
		s.notifier.NotifyAdmins(ctx,
			fmt.Sprintf("❎ Отмена записи: %s снова свободно", slot.Label()))
	}
	return slot, nil
}

func bookErrCode(err error) string {
	switch {
	case errors.Is(err, storage.ErrSlotNotFound):
		return "SLOT_NOT_FOUND"
	case errors.Is(err, storage.ErrSlotTaken):
		return "SLOT_TAKEN"
	case errors.Is(err, storage.ErrAlreadyBooked):
		return "ALREADY_BOOKED"
	default:
		return "INTERNAL"
	}
}
