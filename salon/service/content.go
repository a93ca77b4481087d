package service

import (
	"context"
	"log/slog"

	"salonbot/core/logger"
	"salonbot/salon/storage"
)

// Collection names a paged photo gallery.
type Collection string

const (
	CollectionPortfolio Collection = "portfolio"
	CollectionReviews   Collection = "reviews"
)

// PortfolioStore is the slice of storage backing the portfolio gallery.
type PortfolioStore interface {
	Add(ctx context.Context, fileID string) (storage.PortfolioItem, error)
	Count(ctx context.Context) (int, error)
	At(ctx context.Context, index int) (storage.PortfolioItem, error)
}

// ReviewStore is the slice of storage backing the reviews gallery.
type ReviewStore interface {
	Add(ctx context.Context, fileID, text string) (storage.Review, error)
	Count(ctx context.Context) (int, error)
	At(ctx context.Context, index int) (storage.Review, error)
}

// Page is one rendered gallery position. Empty galleries produce a page
// with Count == 0 and no photo.
type Page struct {
	Collection Collection
	Index      int
	Count      int
	FileID     string
	Caption    string
	HasPrev    bool
	HasNext    bool
}

// Content serves the two photo galleries one item per page.
type Content struct {
	portfolio PortfolioStore
	reviews   ReviewStore
}

func NewContent(portfolio PortfolioStore, reviews ReviewStore) *Content {
	return &Content{portfolio: portfolio, reviews: reviews}
}

// AddPortfolio publishes a new work photo.
func (s *Content) AddPortfolio(ctx context.Context, fileID string) (storage.PortfolioItem, error) {
	item, err := s.portfolio.Add(ctx, fileID)
	if err != nil {
		return storage.PortfolioItem{}, err
	}
	logger.LogEvent(ctx, logger.SVCContent, slog.LevelInfo, "portfolio.added",
		slog.Int64("id", item.ID),
	)
	return item, nil
}

// AddReview publishes a new review photo with its text.
func (s *Content) AddReview(ctx context.Context, fileID, text string) (storage.Review, error) {
	rev, err := s.reviews.Add(ctx, fileID, text)
	if err != nil {
		return storage.Review{}, err
	}
	logger.LogEvent(ctx, logger.SVCContent, slog.LevelInfo, "review.added",
		slog.Int64("id", rev.ID),
	)
	return rev, nil
}

// Page returns the gallery page at index. Out-of-range indexes are
// clamped into [0, count-1] so stale navigation buttons stay usable
// after items are added or the gallery shrinks.
func (s *Content) Page(ctx context.Context, col Collection, index int) (Page, error) {
	switch col {
	case CollectionReviews:
		return s.reviewPage(ctx, index)
	default:
		return s.portfolioPage(ctx, index)
	}
}

func (s *Content) portfolioPage(ctx context.Context, index int) (Page, error) {
	count, err := s.portfolio.Count(ctx)
	if err != nil {
		return Page{}, err
	}
	page := Page{Collection: CollectionPortfolio, Count: count}
	if count == 0 {
		return page, nil
	}
	page.Index = clampIndex(index, count)
	item, err := s.portfolio.At(ctx, page.Index)
	if err != nil {
		return Page{}, err
	}
	page.FileID = item.FileID
	page.HasPrev = page.Index > 0
	page.HasNext = page.Index < count-1
	return page, nil
}

func (s *Content) reviewPage(ctx context.Context, index int) (Page, error) {
	count, err := s.reviews.Count(ctx)
	if err != nil {
		return Page{}, err
	}
	page := Page{Collection: CollectionReviews, Count: count}
	if count == 0 {
		return page, nil
	}
	page.Index = clampIndex(index, count)
	rev, err := s.reviews.At(ctx, page.Index)
	if err != nil {
		return Page{}, err
	}
	page.FileID = rev.FileID
	page.Caption = rev.Text
	page.HasPrev = page.Index > 0
	page.HasNext = page.Index < count-1
	return page, nil
}

func clampIndex(index, count int) int {
	if index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}
