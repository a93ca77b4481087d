package storage

import (
	"testing"
	"time"
)

func TestParseSlotText(t *testing.T) {
	date, clock, err := ParseSlotText("  25.12.2026 14:00 ")
	if err != nil {
		t.Fatalf("ParseSlotText: %v", err)
	}
	if date != "25.12.2026" || clock != "14:00" {
		t.Fatalf("got %q %q", date, clock)
	}

	bad := []string{
		"",
		"25.12.2026",
		"31.02.2026 10:00",
		"25.12.2026 25:00",
		"2026-12-25 14:00",
		"25.12.2026 14:00 extra",
	}
	for _, in := range bad {
		if _, _, err := ParseSlotText(in); err == nil {
			t.Errorf("ParseSlotText(%q): expected error", in)
		}
	}
}

func TestAppointmentAt(t *testing.T) {
	slot := Slot{Date: "25.12.2026", Time: "14:00"}
	at, err := slot.AppointmentAt(time.UTC)
	if err != nil {
		t.Fatalf("AppointmentAt: %v", err)
	}
	want := time.Date(2026, 12, 25, 14, 0, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Fatalf("got %v, want %v", at, want)
	}

	if _, err := ParseAppointment("31.02.2026", "10:00", time.UTC); err == nil {
		t.Fatal("expected error for impossible date")
	}
}
