package service

import (
	"context"
	"fmt"
	"testing"

	"salonbot/salon/storage"
)

type fakePortfolioStore struct {
	items []storage.PortfolioItem
}

func (f *fakePortfolioStore) Add(_ context.Context, fileID string) (storage.PortfolioItem, error) {
	item := storage.PortfolioItem{ID: int64(len(f.items) + 1), FileID: fileID}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakePortfolioStore) Count(_ context.Context) (int, error) {
	return len(f.items), nil
}

func (f *fakePortfolioStore) At(_ context.Context, index int) (storage.PortfolioItem, error) {
	if index < 0 || index >= len(f.items) {
		return storage.PortfolioItem{}, fmt.Errorf("index %d out of range", index)
	}
	return f.items[index], nil
}

type fakeReviewStore struct {
	items []storage.Review
}

func (f *fakeReviewStore) Add(_ context.Context, fileID, text string) (storage.Review, error) {
	rev := storage.Review{ID: int64(len(f.items) + 1), FileID: fileID, Text: text}
	f.items = append(f.items, rev)
	return rev, nil
}

func (f *fakeReviewStore) Count(_ context.Context) (int, error) {
	return len(f.items), nil
}

func (f *fakeReviewStore) At(_ context.Context, index int) (storage.Review, error) {
	if index < 0 || index >= len(f.items) {
		return storage.Review{}, fmt.Errorf("index %d out of range", index)
	}
	return f.items[index], nil
}

func TestContentPageClampsIndex(t *testing.T) {
	ctx := context.Background()
	portfolio := &fakePortfolioStore{}
	svc := NewContent(portfolio, &fakeReviewStore{})

	for i := 0; i < 3; i++ {
		if _, err := svc.AddPortfolio(ctx, fmt.Sprintf("photo-%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{99, 2},
	}
	for _, c := range cases {
		page, err := svc.Page(ctx, CollectionPortfolio, c.in)
		if err != nil {
			t.Fatalf("Page(%d): %v", c.in, err)
		}
		if page.Index != c.want {
			t.Errorf("Page(%d).Index = %d, want %d", c.in, page.Index, c.want)
		}
		if page.FileID != fmt.Sprintf("photo-%d", c.want) {
			t.Errorf("Page(%d).FileID = %q", c.in, page.FileID)
		}
	}

	first, _ := svc.Page(ctx, CollectionPortfolio, 0)
	if first.HasPrev || !first.HasNext {
		t.Fatalf("first page nav: %+v", first)
	}
	last, _ := svc.Page(ctx, CollectionPortfolio, 2)
	if !last.HasPrev || last.HasNext {
		t.Fatalf("last page nav: %+v", last)
	}
}

func TestContentEmptyGallery(t *testing.T) {
	ctx := context.Background()
	svc := NewContent(&fakePortfolioStore{}, &fakeReviewStore{})

	page, err := svc.Page(ctx, CollectionReviews, 0)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if page.Count != 0 || page.FileID != "" || page.HasPrev || page.HasNext {
		t.Fatalf("empty gallery page: %+v", page)
	}
}

func TestContentReviewCaption(t *testing.T) {
	ctx := context.Background()
	reviews := &fakeReviewStore{}
	svc := NewContent(&fakePortfolioStore{}, reviews)

	if _, err := svc.AddReview(ctx, "rev-photo", "Лучший мастер! 💅"); err != nil {
		t.Fatal(err)
	}
	page, err := svc.Page(ctx, CollectionReviews, 0)
	if err != nil {
		t.Fatal(err)
	}
	if page.Caption != "Лучший мастер! 💅" || page.FileID != "rev-photo" {
		t.Fatalf("review page: %+v", page)
	}
	if page.Count != 1 || page.HasPrev || page.HasNext {
		t.Fatalf("single page nav: %+v", page)
	}
}
