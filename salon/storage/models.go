// Package storage provides Postgres-backed repositories for the salon
// domain: portfolio photos, client reviews, appointment slots and bookings.
package storage

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentLayout is the canonical textual form of a slot: day-first date
// plus 24h clock, e.g. "25.12.2026 14:00".
const AppointmentLayout = "02.01.2006 15:04"

const (
	slotDateLayout = "02.01.2006"
	slotTimeLayout = "15:04"
)

// PortfolioItem is one published work photo.
type PortfolioItem struct {
	ID     int64  `db:"id"`
	FileID string `db:"file_id"`
}

// Review is a client review: a photo plus its caption text.
type Review struct {
	ID     int64  `db:"id"`
	FileID string `db:"file_id"`
	Text   string `db:"text"`
}

// Slot is a bookable appointment window. Date and Time are stored in the
// canonical textual form and are only interpreted when a reminder or a
// sort needs the real instant.
type Slot struct {
	ID     int64  `db:"id"`
	Date   string `db:"date"`
	Time   string `db:"time"`
	Booked bool   `db:"booked"`
}

// AppointmentAt resolves the slot to a concrete instant in loc.
func (s Slot) AppointmentAt(loc *time.Location) (time.Time, error) {
	return ParseAppointment(s.Date, s.Time, loc)
}

// Label renders the slot the way it is shown to clients.
func (s Slot) Label() string {
	return s.Date + " " + s.Time
}

// Booking ties a Telegram user to a slot. The reminder flags record which
// one-shot notifications have already been delivered.
type Booking struct {
	ID         int64  `db:"id"`
	UserID     int64  `db:"user_id"`
	Username   string `db:"username"`
	SlotID     int64  `db:"slot_id"`
	Reminder24 bool   `db:"reminder_24"`
	Reminder1  bool   `db:"reminder_1"`
}

// BookingSlot is a booking joined with its slot, as consumed by the
// reminder scan.
type BookingSlot struct {
	Booking
	Date string `db:"date"`
	Time string `db:"time"`
}

// ParseAppointment interprets a stored date/time pair as an instant in loc.
// Parsing is strict: "31.02.2026" is rejected, not rolled over.
func ParseAppointment(date, clock string, loc *time.Location) (time.Time, error) {
	at, err := time.ParseInLocation(AppointmentLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse appointment %q %q: %w", date, clock, err)
	}
	return at, nil
}

// ParseSlotText validates admin input of the form "DD.MM.YYYY HH:MM" and
// splits it into the stored date and time parts.
func ParseSlotText(input string) (date, clock string, err error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) != 2 {
		return "", "", fmt.Errorf("slot text %q: want \"DD.MM.YYYY HH:MM\"", input)
	}
	if _, err := time.Parse(slotDateLayout, fields[0]); err != nil {
		return "", "", fmt.Errorf("slot date %q: %w", fields[0], err)
	}
	if _, err := time.Parse(slotTimeLayout, fields[1]); err != nil {
		return "", "", fmt.Errorf("slot time %q: %w", fields[1], err)
	}
	if _, err := time.Parse(AppointmentLayout, fields[0]+" "+fields[1]); err != nil {
		return "", "", fmt.Errorf("slot %q: %w", input, err)
	}
	return fields[0], fields[1], nil
}
