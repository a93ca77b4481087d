package telegram

import (
	"errors"
	"strings"

	tghelpers "salonbot/core/telegram/helpers"
	"salonbot/core/telegram/state"
	"salonbot/salon/service"

	tele "gopkg.in/telebot.v4"
)

const (
	stateAwaitPortfolioPhoto state.State = "await_portfolio_photo"
	stateAwaitReviewPhoto    state.State = "await_review_photo"
	stateAwaitSlotText       state.State = "await_slot_text"
)

func (h *Handlers) cbAdmin(c tele.Context) error {
	if !h.isAdmin(c.Sender().ID) {
		return h.showScreen(c, textAdminDenied, backMarkup())
	}
	return h.showScreen(c, textAdminMenu, adminMenuMarkup())
}

func (h *Handlers) cbAddPortfolio(c tele.Context) error {
	return h.startIntake(c, stateAwaitPortfolioPhoto, textSendPortfolio)
}

func (h *Handlers) cbAddReview(c tele.Context) error {
	return h.startIntake(c, stateAwaitReviewPhoto, textSendReview)
}

func (h *Handlers) cbAddSlot(c tele.Context) error {
	return h.startIntake(c, stateAwaitSlotText, textSendSlot)
}

func (h *Handlers) startIntake(c tele.Context, st state.State, prompt string) error {
	if !h.isAdmin(c.Sender().ID) {
		return h.showScreen(c, textAdminDenied, backMarkup())
	}
	h.fsm.SetState(c.Sender().ID, st)
	return h.showScreen(c, prompt, intakeCancelMarkup())
}

func (h *Handlers) cbAdminCancel(c tele.Context) error {
	h.fsm.ClearState(c.Sender().ID)
	return h.showScreen(c, textIntakeCancelled, adminMenuMarkup())
}

// onPortfolioPhoto consumes the photo the admin was asked for. Wrong
// input re-prompts without leaving the state.
func (h *Handlers) onPortfolioPhoto(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return tghelpers.SendHTML(c, textNeedPhoto, intakeCancelMarkup())
	}

	ctx := tghelpers.BuildContext(c)
	if _, err := h.content.AddPortfolio(ctx, photo.FileID); err != nil {
		_ = tghelpers.SendText(c, textTryAgain)
		return err
	}
	h.fsm.ClearState(c.Sender().ID)
	return tghelpers.SendHTML(c, textPortfolioAdded, adminMenuMarkup())
}

// onReviewPhoto requires both a photo and a non-empty caption.
func (h *Handlers) onReviewPhoto(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return tghelpers.SendHTML(c, textNeedPhoto, intakeCancelMarkup())
	}
	caption := strings.TrimSpace(c.Message().Caption)
	if caption == "" {
		return tghelpers.SendHTML(c, textNeedCaption, intakeCancelMarkup())
	}

	ctx := tghelpers.BuildContext(c)
	if _, err := h.content.AddReview(ctx, photo.FileID, caption); err != nil {
		_ = tghelpers.SendText(c, textTryAgain)
		return err
	}
	h.fsm.ClearState(c.Sender().ID)
	return tghelpers.SendHTML(c, textReviewAdded, adminMenuMarkup())
}

// onSlotText parses "DD.MM.YYYY HH:MM" admin input into a new free slot.
func (h *Handlers) onSlotText(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	slot, err := h.booking.CreateSlot(ctx, c.Text())
	if errors.Is(err, service.ErrInvalidSlotText) {
		return tghelpers.SendHTML(c, textBadSlot, intakeCancelMarkup())
	}
	if err != nil {
		_ = tghelpers.SendText(c, textTryAgain)
		return err
	}
	h.fsm.ClearState(c.Sender().ID)
	return tghelpers.SendHTML(c, slotAddedText(slot.Label()), adminMenuMarkup())
}
