package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"salonbot/salon/storage"
)

type fakeSlotStore struct {
	mu      sync.Mutex
	slots   []storage.Slot
	nextID  int64
	listErr error
}

func (f *fakeSlotStore) Create(_ context.Context, date, clock string) (storage.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	slot := storage.Slot{ID: f.nextID, Date: date, Time: clock}
	f.slots = append(f.slots, slot)
	return slot, nil
}

func (f *fakeSlotStore) ListFree(_ context.Context) ([]storage.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var free []storage.Slot
	for _, s := range f.slots {
		if !s.Booked {
			free = append(free, s)
		}
	}
	return free, nil
}

type fakeBookingStore struct {
	mu       sync.Mutex
	slots    *fakeSlotStore
	bookings map[int64]storage.Booking
	nextID   int64
}

func newFakeBookingStore(slots *fakeSlotStore) *fakeBookingStore {
	return &fakeBookingStore{slots: slots, bookings: make(map[int64]storage.Booking)}
}

func (f *fakeBookingStore) Book(_ context.Context, slotID, userID int64, username string) (storage.Booking, storage.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots.mu.Lock()
	defer f.slots.mu.Unlock()

	idx := -1
	for i, s := range f.slots.slots {
		if s.ID == slotID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return storage.Booking{}, storage.Slot{}, storage.ErrSlotNotFound
	}
	if f.slots.slots[idx].Booked {
		return storage.Booking{}, storage.Slot{}, storage.ErrSlotTaken
	}
	if _, ok := f.bookings[userID]; ok {
		return storage.Booking{}, storage.Slot{}, storage.ErrAlreadyBooked
	}
	f.slots.slots[idx].Booked = true
	f.nextID++
	b := storage.Booking{ID: f.nextID, UserID: userID, Username: username, SlotID: slotID}
	f.bookings[userID] = b
	return b, f.slots.slots[idx], nil
}

func (f *fakeBookingStore) Cancel(_ context.Context, userID int64) (storage.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots.mu.Lock()
	defer f.slots.mu.Unlock()

	b, ok := f.bookings[userID]
	if !ok {
		return storage.Slot{}, storage.ErrNoActiveBooking
	}
	delete(f.bookings, userID)
	for i, s := range f.slots.slots {
		if s.ID == b.SlotID {
			f.slots.slots[i].Booked = false
			return f.slots.slots[i], nil
		}
	}
	return storage.Slot{}, storage.ErrSlotNotFound
}

type recordingNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (n *recordingNotifier) NotifyAdmins(_ context.Context, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
}

func newBookingFixture() (*Booking, *fakeSlotStore, *fakeBookingStore, *recordingNotifier) {
	slots := &fakeSlotStore{}
	bookings := newFakeBookingStore(slots)
	notifier := &recordingNotifier{}
	svc := NewBooking(slots, bookings, notifier, time.UTC)
	return svc, slots, bookings, notifier
}

func TestBookingCreateSlot(t *testing.T) {
	svc, _, _, _ := newBookingFixture()
	ctx := context.Background()

	slot, err := svc.CreateSlot(ctx, "25.12.2026 14:00")
	if err != nil {
		t.Fatalf("CreateSlot: %v", err)
	}
	if slot.Date != "25.12.2026" || slot.Time != "14:00" {
		t.Fatalf("unexpected slot %+v", slot)
	}

	if _, err := svc.CreateSlot(ctx, "31.02.2026 10:00"); !errors.Is(err, ErrInvalidSlotText) {
		t.Fatalf("expected ErrInvalidSlotText, got %v", err)
	}
}

func TestBookingBookAndConflicts(t *testing.T) {
	svc, _, _, notifier := newBookingFixture()
	ctx := context.Background()

	slot, err := svc.CreateSlot(ctx, "25.12.2026 14:00")
	if err != nil {
		t.Fatalf("CreateSlot: %v", err)
	}

	booked, err := svc.Book(ctx, slot.ID, 100, "alisa")
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if !booked.Booked {
		t.Fatal("slot not marked booked")
	}
	if len(notifier.texts) != 1 {
		t.Fatalf("expected 1 admin notification, got %d", len(notifier.texts))
	}

	if _, err := svc.Book(ctx, slot.ID, 200, "boris"); !errors.Is(err, storage.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	other, _ := svc.CreateSlot(ctx, "26.12.2026 11:00")
	if _, err := svc.Book(ctx, other.ID, 100, "alisa"); !errors.Is(err, storage.ErrAlreadyBooked) {
		t.Fatalf("expected ErrAlreadyBooked, got %v", err)
	}

	if _, err := svc.Book(ctx, 999, 300, ""); !errors.Is(err, storage.ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
}

func TestBookingCancelFreesSlot(t *testing.T) {
	svc, _, _, _ := newBookingFixture()
	ctx := context.Background()

	slot, _ := svc.CreateSlot(ctx, "25.12.2026 14:00")
	if _, err := svc.Book(ctx, slot.ID, 100, "alisa"); err != nil {
		t.Fatalf("Book: %v", err)
	}

	freed, err := svc.Cancel(ctx, 100)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if freed.ID != slot.ID || freed.Booked {
		t.Fatalf("unexpected freed slot %+v", freed)
	}

	if _, err := svc.Cancel(ctx, 100); !errors.Is(err, storage.ErrNoActiveBooking) {
		t.Fatalf("expected ErrNoActiveBooking, got %v", err)
	}

	// Freed slot is bookable again, even by another user.
	if _, err := svc.Book(ctx, slot.ID, 200, "boris"); err != nil {
		t.Fatalf("rebook freed slot: %v", err)
	}
}

func TestBookingFreeSlotsSortedByInstant(t *testing.T) {
	svc, slots, _, _ := newBookingFixture()
	ctx := context.Background()

	// Inserted out of chronological order.
	if _, err := svc.CreateSlot(ctx, "26.12.2026 09:00"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateSlot(ctx, "25.12.2026 14:00"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateSlot(ctx, "25.12.2026 10:00"); err != nil {
		t.Fatal(err)
	}
	// Corrupted row sorts last.
	slots.mu.Lock()
	slots.nextID++
	slots.slots = append(slots.slots, storage.Slot{ID: slots.nextID, Date: "garbage", Time: "??"})
	slots.mu.Unlock()

	free, err := svc.FreeSlots(ctx)
	if err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	var labels []string
	for _, s := range free {
		labels = append(labels, s.Label())
	}
	want := []string{"25.12.2026 10:00", "25.12.2026 14:00", "26.12.2026 09:00", "garbage ??"}
	if len(labels) != len(want) {
		t.Fatalf("got %v", labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v", i, labels)
		}
	}
}
