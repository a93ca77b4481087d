package telegram

import (
	tghelpers "salonbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

func (h *Handlers) handleStart(c tele.Context) error {
	h.fsm.ClearState(c.Sender().ID)
	return tghelpers.SendHTML(c, textGreeting, mainMenuMarkup(h.isAdmin(c.Sender().ID)))
}

// cbMenu returns to the main menu from anywhere, dropping any active
// intake conversation.
func (h *Handlers) cbMenu(c tele.Context) error {
	h.fsm.ClearState(c.Sender().ID)
	return h.showScreen(c, textGreeting, mainMenuMarkup(h.isAdmin(c.Sender().ID)))
}

func (h *Handlers) cbPrice(c tele.Context) error {
	return h.showScreen(c, priceText(h.cfg.Salon.Price), backMarkup())
}

// showScreen replaces the current message with a text screen. Photo
// messages cannot be edited into text, so those are deleted and the
// screen is sent fresh.
func (h *Handlers) showScreen(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if msg := c.Message(); msg != nil && msg.Photo != nil {
		_ = c.Delete()
		return tghelpers.SendHTML(c, text, markup)
	}
	return tghelpers.EditOrSendHTML(c, text, markup)
}
