package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"salonbot/core/logger"
	"salonbot/salon/storage"
)

const (
	reminderDayWindow  = 24 * time.Hour
	reminderHourWindow = time.Hour
)

// Messenger delivers a text message straight to a Telegram user.
type Messenger interface {
	SendMessage(ctx context.Context, userID int64, text string) error
}

// ReminderStore is the slice of storage the reminder scan needs.
type ReminderStore interface {
	ListWithSlots(ctx context.Context) ([]storage.BookingSlot, error)
	MarkReminder24(ctx context.Context, bookingID int64) error
	MarkReminder1(ctx context.Context, bookingID int64) error
}

// Reminder periodically scans bookings and delivers the two one-shot
// notifications: a day before and an hour before the appointment. A flag
// is persisted only after the message went out, so a failed send retries
// on the next cycle instead of being lost.
type Reminder struct {
	store    ReminderStore
	msgr     Messenger
	interval time.Duration
	loc      *time.Location
	now      func() time.Time
}

func NewReminder(store ReminderStore, msgr Messenger, interval time.Duration, loc *time.Location) *Reminder {
	if interval <= 0 {
		interval = time.Minute
	}
	if loc == nil {
		loc = time.Local
	}
	return &Reminder{
		store:    store,
		msgr:     msgr,
		interval: interval,
		loc:      loc,
		now:      time.Now,
	}
}

// Run loops until ctx is cancelled, scanning once per interval.
func (r *Reminder) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	logger.LogEvent(ctx, logger.REM, slog.LevelInfo, "loop.started",
		slog.Duration("interval", r.interval),
	)
	for {
		select {
		case <-ctx.Done():
			logger.LogEvent(ctx, logger.REM, slog.LevelInfo, "loop.stopped",
				slog.String("outcome", "cancelled"),
			)
			return
		case <-ticker.C:
			r.runCycle(ctx, r.now())
		}
	}
}

// runCycle processes one scan. Failures are isolated per booking: a bad
// row or a failed send never stops the rest of the pass.
func (r *Reminder) runCycle(ctx context.Context, now time.Time) (sent int) {
	start := time.Now()
	rows, err := r.store.ListWithSlots(ctx)
	if err != nil {
		logger.LogEvent(ctx, logger.REM, slog.LevelError, "scan.failed",
			slog.String("err", err.Error()),
		)
		return 0
	}
	for _, row := range rows {
		sent += r.remind(ctx, row, now)
	}
	if sent > 0 {
		logger.LogEvent(ctx, logger.REM, slog.LevelInfo, "scan.done",
			slog.Int("bookings", len(rows)),
			slog.Int("sent", sent),
			slog.Duration("took", logger.Took(start)),
		)
	}
	return sent
}

func (r *Reminder) remind(ctx context.Context, row storage.BookingSlot, now time.Time) (sent int) {
	at, err := storage.ParseAppointment(row.Date, row.Time, r.loc)
	if err != nil {
		logger.LogEvent(ctx, logger.REM, slog.LevelWarn, "slot.unparsable",
			slog.Int64("booking_id", row.ID),
			slog.Int64("slot_id", row.SlotID),
			slog.String("err", err.Error()),
		)
		return 0
	}
	until := at.Sub(now)
	if until <= 0 {
		return 0
	}
	if until <= reminderDayWindow && !row.Reminder24 {
		text := fmt.Sprintf("💖 Завтра в %s у вас запись!", row.Time)
		if r.deliver(ctx, row, "24h", text, r.store.MarkReminder24) {
			sent++
		}
	}
	if until <= reminderHourWindow && !row.Reminder1 {
		text := fmt.Sprintf("💌 Через час встречаемся! %s %s", row.Date, row.Time)
		if r.deliver(ctx, row, "1h", text, r.store.MarkReminder1) {
			sent++
		}
	}
	return sent
}

func (r *Reminder) deliver(ctx context.Context, row storage.BookingSlot, threshold, text string, mark func(context.Context, int64) error) bool {
	if err := r.msgr.SendMessage(ctx, row.UserID, text); err != nil {
		logger.LogEvent(ctx, logger.REM, slog.LevelWarn, "send.failed",
			slog.Int64("booking_id", row.ID),
			slog.Int64("user_id", row.UserID),
			slog.String("threshold", threshold),
			slog.String("err", err.Error()),
		)
		return false
	}
	if err := mark(ctx, row.ID); err != nil {
		// Delivered but not recorded: the next cycle will resend.
		logger.LogEvent(ctx, logger.REM, slog.LevelError, "mark.failed",
			slog.Int64("booking_id", row.ID),
			slog.String("threshold", threshold),
			slog.String("err", err.Error()),
		)
		return true
	}
	logger.LogEvent(ctx, logger.REM, slog.LevelInfo, "sent",
		slog.Int64("booking_id", row.ID),
		slog.Int64("user_id", row.UserID),
		slog.String("threshold", threshold),
	)
	return true
}
