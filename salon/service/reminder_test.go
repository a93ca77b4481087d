package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"salonbot/salon/storage"
)

type fakeReminderStore struct {
	mu   sync.Mutex
	rows []storage.BookingSlot
}

func (f *fakeReminderStore) ListWithSlots(_ context.Context) ([]storage.BookingSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]storage.BookingSlot, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeReminderStore) mark(bookingID int64, day bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == bookingID {
			if day {
				f.rows[i].Reminder24 = true
			} else {
				f.rows[i].Reminder1 = true
			}
			return nil
		}
	}
	return errors.New("booking not found")
}

func (f *fakeReminderStore) MarkReminder24(_ context.Context, id int64) error {
	return f.mark(id, true)
}

func (f *fakeReminderStore) MarkReminder1(_ context.Context, id int64) error {
	return f.mark(id, false)
}

type fakeMessenger struct {
	mu    sync.Mutex
	sent  []string
	fails int
}

func (f *fakeMessenger) SendMessage(_ context.Context, userID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fails > 0 {
		f.fails--
		return errors.New("telegram unavailable")
	}
	f.sent = append(f.sent, text)
	return nil
}

func row(id, userID int64, at time.Time) storage.BookingSlot {
	return storage.BookingSlot{
		Booking: storage.Booking{ID: id, UserID: userID, SlotID: id},
		Date:    at.Format("02.01.2006"),
		Time:    at.Format("15:04"),
	}
}

func TestReminderCycleThresholds(t *testing.T) {
	now := time.Date(2026, 12, 24, 14, 30, 0, 0, time.UTC)
	store := &fakeReminderStore{rows: []storage.BookingSlot{
		row(1, 100, now.Add(23*time.Hour)),   // inside 24h window
		row(2, 200, now.Add(48*time.Hour)),   // too far out
		row(3, 300, now.Add(30*time.Minute)), // inside both windows
		row(4, 400, now.Add(-time.Hour)),     // already past
	}}
	msgr := &fakeMessenger{}
	rem := NewReminder(store, msgr, time.Minute, time.UTC)

	sent := rem.runCycle(context.Background(), now)
	if sent != 3 {
		t.Fatalf("sent = %d, want 3 (24h for #1, 24h+1h for #3)", sent)
	}
	if !store.rows[0].Reminder24 || store.rows[0].Reminder1 {
		t.Fatalf("booking 1 flags: %+v", store.rows[0].Booking)
	}
	if store.rows[1].Reminder24 || store.rows[1].Reminder1 {
		t.Fatalf("booking 2 should remain untouched: %+v", store.rows[1].Booking)
	}
	if !store.rows[2].Reminder24 || !store.rows[2].Reminder1 {
		t.Fatalf("booking 3 flags: %+v", store.rows[2].Booking)
	}
	if store.rows[3].Reminder24 || store.rows[3].Reminder1 {
		t.Fatalf("past booking should be skipped: %+v", store.rows[3].Booking)
	}

	// Second cycle at the same instant is a no-op.
	if again := rem.runCycle(context.Background(), now); again != 0 {
		t.Fatalf("repeat cycle sent %d, want 0", again)
	}
}

func TestReminderTexts(t *testing.T) {
	now := time.Date(2026, 12, 24, 14, 0, 0, 0, time.UTC)
	store := &fakeReminderStore{rows: []storage.BookingSlot{
		row(1, 100, now.Add(40*time.Minute)),
	}}
	msgr := &fakeMessenger{}
	rem := NewReminder(store, msgr, time.Minute, time.UTC)
	rem.runCycle(context.Background(), now)

	if len(msgr.sent) != 2 {
		t.Fatalf("sent %d messages, want 2", len(msgr.sent))
	}
	if !strings.Contains(msgr.sent[0], "Завтра в 14:40") {
		t.Fatalf("day reminder text: %q", msgr.sent[0])
	}
	if !strings.Contains(msgr.sent[1], "Через час") || !strings.Contains(msgr.sent[1], "24.12.2026 14:40") {
		t.Fatalf("hour reminder text: %q", msgr.sent[1])
	}
}

func TestReminderFailedSendRetriesNextCycle(t *testing.T) {
	now := time.Date(2026, 12, 24, 14, 0, 0, 0, time.UTC)
	store := &fakeReminderStore{rows: []storage.BookingSlot{
		row(1, 100, now.Add(2*time.Hour)),
	}}
	msgr := &fakeMessenger{fails: 1}
	rem := NewReminder(store, msgr, time.Minute, time.UTC)

	if sent := rem.runCycle(context.Background(), now); sent != 0 {
		t.Fatalf("first cycle sent %d, want 0", sent)
	}
	if store.rows[0].Reminder24 {
		t.Fatal("flag must not be set after failed send")
	}

	if sent := rem.runCycle(context.Background(), now); sent != 1 {
		t.Fatal("second cycle should deliver the reminder")
	}
	if !store.rows[0].Reminder24 {
		t.Fatal("flag must be set after successful send")
	}
}

func TestReminderSkipsUnparsableSlot(t *testing.T) {
	now := time.Date(2026, 12, 24, 14, 0, 0, 0, time.UTC)
	bad := storage.BookingSlot{
		Booking: storage.Booking{ID: 1, UserID: 100, SlotID: 1},
		Date:    "garbage",
		Time:    "??",
	}
	store := &fakeReminderStore{rows: []storage.BookingSlot{
		bad,
		row(2, 200, now.Add(30*time.Minute)),
	}}
	msgr := &fakeMessenger{}
	rem := NewReminder(store, msgr, time.Minute, time.UTC)

	if sent := rem.runCycle(context.Background(), now); sent != 2 {
		t.Fatalf("sent = %d, want 2 for the valid booking", sent)
	}
}
