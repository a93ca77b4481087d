package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SlotRepo persists appointment slots.
type SlotRepo struct {
	db *sqlx.DB
}

func NewSlotRepo(db *sqlx.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// Create adds a free slot with the given stored date and time parts.
func (r *SlotRepo) Create(ctx context.Context, date, clock string) (Slot, error) {
	var slot Slot
	err := r.db.GetContext(ctx, &slot,
		`INSERT INTO slots (date, time) VALUES ($1, $2)
		 RETURNING id, date, time, booked`, date, clock)
	if err != nil {
		return Slot{}, fmt.Errorf("insert slot: %w", err)
	}
	return slot, nil
}

// ListFree returns all slots that are not booked yet.
func (r *SlotRepo) ListFree(ctx context.Context) ([]Slot, error) {
	var slots []Slot
	err := r.db.SelectContext(ctx, &slots,
		`SELECT id, date, time, booked FROM slots WHERE booked = FALSE ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select free slots: %w", err)
	}
	return slots, nil
}
