package telegram

import (
	"errors"

	"salonbot/core/telegram/callbacks"
	tghelpers "salonbot/core/telegram/helpers"
	"salonbot/salon/storage"

	tele "gopkg.in/telebot.v4"
)

func (h *Handlers) cbBooking(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	slots, err := h.booking.FreeSlots(ctx)
	if err != nil {
		_ = tghelpers.SendText(c, textTryAgain)
		return err
	}
	if len(slots) == 0 {
		return h.showScreen(c, textNoSlots, backMarkup())
	}
	return h.showScreen(c, textPickSlot, slotsMarkup(slots))
}

func (h *Handlers) cbBook(c tele.Context) error {
	slotID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return h.showScreen(c, textSlotTaken, backMarkup())
	}

	ctx := tghelpers.BuildContext(c)
	slot, err := h.booking.Book(ctx, slotID, c.Sender().ID, c.Sender().Username)
	switch {
	case errors.Is(err, storage.ErrSlotTaken), errors.Is(err, storage.ErrSlotNotFound):
		// Stale buttons land here: someone else won the slot or it no
		// longer exists.
		return h.showScreen(c, textSlotTaken, backMarkup())
	case errors.Is(err, storage.ErrAlreadyBooked):
		return h.showScreen(c, textHasBooking, backMarkup())
	case err != nil:
		_ = tghelpers.SendText(c, textTryAgain)
		return err
	}
	return h.showScreen(c, bookedText(slot.Label()), backMarkup())
}

func (h *Handlers) cbCancelMy(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	slot, err := h.booking.Cancel(ctx, c.Sender().ID)
	if errors.Is(err, storage.ErrNoActiveBooking) {
		return h.showScreen(c, textNoBooking, backMarkup())
	}
	if err != nil {
		_ = tghelpers.SendText(c, textTryAgain)
		return err
	}
	return h.showScreen(c, cancelledText(slot.Label()), backMarkup())
}
