package telegram

import (
	"strconv"

	"salonbot/core/telegram/keyboard"
	"salonbot/salon/service"
	"salonbot/salon/storage"

	tele "gopkg.in/telebot.v4"
)

const (
	cbKeyMenu         = "menu"
	cbKeyPrice        = "price"
	cbKeyPortfolio    = "portfolio"
	cbKeyReviews      = "reviews"
	cbKeyBooking      = "booking"
	cbKeyBook         = "book"
	cbKeyCancelMy     = "cancel_my"
	cbKeyAdmin        = "admin"
	cbKeyAddPortfolio = "add_portfolio"
	cbKeyAddReview    = "add_review"
	cbKeyAddSlot      = "add_slot"
	cbKeyAdminCancel  = "admin_cancel"
)

func mainMenuMarkup(isAdmin bool) *tele.ReplyMarkup {
	buttons := []keyboard.InlineBtn{
		{Text: "💅 Прайс", Unique: cbKeyPrice},
		{Text: "🖼 Портфолио", Unique: cbKeyPortfolio, Data: "0"},
		{Text: "💬 Отзывы", Unique: cbKeyReviews, Data: "0"},
		{Text: "📅 Записаться", Unique: cbKeyBooking},
		{Text: "❌ Отменить запись", Unique: cbKeyCancelMy},
	}
	if isAdmin {
		buttons = append(buttons, keyboard.InlineBtn{Text: "🛠 Админка", Unique: cbKeyAdmin})
	}
	return keyboard.InlineButtons(buttons)
}

func backMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "⬅️ В меню", Unique: cbKeyMenu},
	})
}

func adminMenuMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "📸 Добавить работу", Unique: cbKeyAddPortfolio},
		{Text: "💬 Добавить отзыв", Unique: cbKeyAddReview},
		{Text: "🕐 Добавить окно", Unique: cbKeyAddSlot},
		{Text: "⬅️ В меню", Unique: cbKeyMenu},
	})
}

func intakeCancelMarkup() *tele.ReplyMarkup {
	return keyboard.SingleCancelMarkup(cbKeyAdminCancel)
}

func slotsMarkup(slots []storage.Slot) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(slots)+1)
	for _, slot := range slots {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   slot.Label(),
			Unique: cbKeyBook,
			Data:   strconv.FormatInt(slot.ID, 10),
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: "⬅️ В меню", Unique: cbKeyMenu})
	return keyboard.InlineButtons(buttons)
}

func galleryMarkup(page service.Page) *tele.ReplyMarkup {
	unique := cbKeyPortfolio
	if page.Collection == service.CollectionReviews {
		unique = cbKeyReviews
	}
	var nav []keyboard.InlineBtn
	if page.HasPrev {
		nav = append(nav, keyboard.InlineBtn{
			Text:   "⬅️",
			Unique: unique,
			Data:   strconv.Itoa(page.Index - 1),
		})
	}
	if page.HasNext {
		nav = append(nav, keyboard.InlineBtn{
			Text:   "➡️",
			Unique: unique,
			Data:   strconv.Itoa(page.Index + 1),
		})
	}
	rows := [][]keyboard.InlineBtn{}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, []keyboard.InlineBtn{{Text: "⬅️ В меню", Unique: cbKeyMenu}})
	return keyboard.InlineButtonsRows(rows...)
}
