package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ReviewRepo persists client reviews.
type ReviewRepo struct {
	db *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Add stores a review photo with its caption text.
func (r *ReviewRepo) Add(ctx context.Context, fileID, text string) (Review, error) {
	var rev Review
	err := r.db.GetContext(ctx, &rev,
		`INSERT INTO reviews (file_id, text) VALUES ($1, $2) RETURNING id, file_id, text`,
		fileID, text)
	if err != nil {
		return Review{}, fmt.Errorf("insert review: %w", err)
	}
	return rev, nil
}

// Count reports the number of stored reviews.
func (r *ReviewRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM reviews`); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

// At returns the review at the given zero-based position in insertion order.
func (r *ReviewRepo) At(ctx context.Context, index int) (Review, error) {
	var rev Review
	err := r.db.GetContext(ctx, &rev,
		`SELECT id, file_id, text FROM reviews ORDER BY id LIMIT 1 OFFSET $1`, index)
	if errors.Is(err, sql.ErrNoRows) {
		return Review{}, fmt.Errorf("review at %d: %w", index, err)
	}
	if err != nil {
		return Review{}, fmt.Errorf("select review: %w", err)
	}
	return rev, nil
}
