package telegram

import (
	"salonbot/core/telegram/callbacks"
	tghelpers "salonbot/core/telegram/helpers"
	"salonbot/salon/service"

	tele "gopkg.in/telebot.v4"
)

func (h *Handlers) cbPortfolio(c tele.Context) error {
	return h.showGallery(c, service.CollectionPortfolio)
}

func (h *Handlers) cbReviews(c tele.Context) error {
	return h.showGallery(c, service.CollectionReviews)
}

// showGallery renders one gallery page. The page index rides in the
// callback payload; anything unparsable falls back to the first page.
func (h *Handlers) showGallery(c tele.Context, col service.Collection) error {
	index, err := callbacks.PayloadInt(c)
	if err != nil {
		index = 0
	}

	ctx := tghelpers.BuildContext(c)
	page, err := h.content.Page(ctx, col, index)
	if err != nil {
		_ = tghelpers.SendText(c, textTryAgain)
		return err
	}
	if page.Count == 0 {
		return h.showScreen(c, textEmptyWorks, backMarkup())
	}

	caption := galleryCaption(page.Caption, page.Index, page.Count)
	// A text message cannot be edited into a photo, so the old screen
	// is replaced wholesale.
	_ = c.Delete()
	return tghelpers.SendPhoto(c, page.FileID, caption, galleryMarkup(page))
}
