package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PortfolioRepo persists published work photos.
type PortfolioRepo struct {
	db *sqlx.DB
}

func NewPortfolioRepo(db *sqlx.DB) *PortfolioRepo {
	return &PortfolioRepo{db: db}
}

// Add stores a new work photo and returns it with its assigned id.
func (r *PortfolioRepo) Add(ctx context.Context, fileID string) (PortfolioItem, error) {
	var item PortfolioItem
	err := r.db.GetContext(ctx, &item,
		`INSERT INTO portfolio (file_id) VALUES ($1) RETURNING id, file_id`, fileID)
	if err != nil {
		return PortfolioItem{}, fmt.Errorf("insert portfolio item: %w", err)
	}
	return item, nil
}

// Count reports the number of stored work photos.
func (r *PortfolioRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM portfolio`); err != nil {
		return 0, fmt.Errorf("count portfolio: %w", err)
	}
	return n, nil
}

// At returns the item at the given zero-based position in insertion order.
func (r *PortfolioRepo) At(ctx context.Context, index int) (PortfolioItem, error) {
	var item PortfolioItem
	err := r.db.GetContext(ctx, &item,
		`SELECT id, file_id FROM portfolio ORDER BY id LIMIT 1 OFFSET $1`, index)
	if errors.Is(err, sql.ErrNoRows) {
		return PortfolioItem{}, fmt.Errorf("portfolio item at %d: %w", index, err)
	}
	if err != nil {
		return PortfolioItem{}, fmt.Errorf("select portfolio item: %w", err)
	}
	return item, nil
}
