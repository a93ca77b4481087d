package telegram

import (
	"testing"

	"salonbot/salon/config"
	"salonbot/salon/service"
	"salonbot/salon/storage"
)

func TestSlotsMarkup(t *testing.T) {
	slots := []storage.Slot{
		{ID: 7, Date: "25.12.2026", Time: "14:00"},
		{ID: 9, Date: "26.12.2026", Time: "10:00"},
	}
	markup := slotsMarkup(slots)
	if len(markup.InlineKeyboard) != 3 {
		t.Fatalf("rows = %d, want 2 slots + menu", len(markup.InlineKeyboard))
	}
	first := markup.InlineKeyboard[0][0]
	if first.Text != "25.12.2026 14:00" {
		t.Fatalf("first button text = %q", first.Text)
	}
	if first.Unique != cbKeyBook || first.Data != "7" {
		t.Fatalf("first button data = %q (unique %q)", first.Data, first.Unique)
	}
}

func TestGalleryMarkupNavigation(t *testing.T) {
	middle := service.Page{Collection: service.CollectionPortfolio, Index: 1, Count: 3, HasPrev: true, HasNext: true}
	markup := galleryMarkup(middle)
	if len(markup.InlineKeyboard) != 2 || len(markup.InlineKeyboard[0]) != 2 {
		t.Fatalf("middle page rows: %+v", markup.InlineKeyboard)
	}
	if markup.InlineKeyboard[0][0].Data != "0" || markup.InlineKeyboard[0][0].Unique != cbKeyPortfolio {
		t.Fatalf("prev button: %+v", markup.InlineKeyboard[0][0])
	}
	if markup.InlineKeyboard[0][1].Data != "2" {
		t.Fatalf("next data = %q", markup.InlineKeyboard[0][1].Data)
	}

	single := service.Page{Collection: service.CollectionReviews, Index: 0, Count: 1}
	markup = galleryMarkup(single)
	if len(markup.InlineKeyboard) != 1 {
		t.Fatalf("single page should only have the menu row: %+v", markup.InlineKeyboard)
	}
}

func TestPriceText(t *testing.T) {
	got := priceText([]config.PriceItem{
		{Name: "Маникюр", Cost: "1500₽"},
		{Name: "Дизайн", Cost: "500₽"},
	})
	want := "<b>Прайс-лист 💅</b>\n\nМаникюр — 1500₽\nДизайн — 500₽"
	if got != want {
		t.Fatalf("priceText:\n%q\nwant\n%q", got, want)
	}
}

func TestGalleryCaption(t *testing.T) {
	if got := galleryCaption("", 0, 4); got != "1/4" {
		t.Fatalf("bare caption = %q", got)
	}
	if got := galleryCaption("Отличный мастер", 2, 3); got != "Отличный мастер\n\n3/3" {
		t.Fatalf("caption = %q", got)
	}
}
