package storage

import "errors"

var (
	// ErrSlotNotFound is returned when a referenced slot does not exist.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotTaken is returned when a booking races for an already
	// booked slot.
	ErrSlotTaken = errors.New("slot already booked")

	// ErrAlreadyBooked is returned when a user who already holds an
	// active booking tries to take another slot.
	ErrAlreadyBooked = errors.New("user already has an active booking")

	// ErrNoActiveBooking is returned when a cancellation finds nothing
	// to cancel for the user.
	ErrNoActiveBooking = errors.New("no active booking")
)
