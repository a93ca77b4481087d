package telegram

import (
	tg "salonbot/core/telegram"
	"salonbot/core/telegram/commands"
	tghelpers "salonbot/core/telegram/helpers"
	"salonbot/core/telegram/router"
	"salonbot/core/telegram/state"
	"salonbot/salon/config"
	"salonbot/salon/service"

	tele "gopkg.in/telebot.v4"
)

// Handlers binds the salon services to bot commands and callbacks.
type Handlers struct {
	cfg     *config.Config
	booking *service.Booking
	content *service.Content
	fsm     state.Manager
}

func NewHandlers(cfg *config.Config, booking *service.Booking, content *service.Content, fsm state.Manager) *Handlers {
	return &Handlers{cfg: cfg, booking: booking, content: content, fsm: fsm}
}

func (h *Handlers) isAdmin(userID int64) bool {
	return h.cfg.Core.Telegram.IsAdmin(userID)
}

// Register fills the registry with the bot's commands, callbacks and
// intake state handlers.
func (h *Handlers) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.handleStart,
		Description: "Главное меню",
	})

	_ = reg.RegisterCallback(cbKeyMenu, h.cbMenu)
	_ = reg.RegisterCallback(cbKeyPrice, h.cbPrice)
	_ = reg.RegisterCallback(cbKeyPortfolio, h.cbPortfolio)
	_ = reg.RegisterCallback(cbKeyReviews, h.cbReviews)
	_ = reg.RegisterCallback(cbKeyBooking, h.cbBooking)
	_ = reg.RegisterCallback(cbKeyBook, h.cbBook)
	_ = reg.RegisterCallback(cbKeyCancelMy, h.cbCancelMy)
	_ = reg.RegisterCallback(cbKeyAdmin, h.cbAdmin)
	_ = reg.RegisterCallback(cbKeyAddPortfolio, h.cbAddPortfolio)
	_ = reg.RegisterCallback(cbKeyAddReview, h.cbAddReview)
	_ = reg.RegisterCallback(cbKeyAddSlot, h.cbAddSlot)
	_ = reg.RegisterCallback(cbKeyAdminCancel, h.cbAdminCancel)

	state.RegisterHandler(stateAwaitPortfolioPhoto, h.onPortfolioPhoto)
	state.RegisterHandler(stateAwaitReviewPhoto, h.onReviewPhoto)
	state.RegisterHandler(stateAwaitSlotText, h.onSlotText)

	reg.SetTextFallback(func(c tele.Context) error {
		return tghelpers.SendHTML(c, textNothingToRespond, mainMenuMarkup(h.isAdmin(c.Sender().ID)))
	})
}

// Routes assembles the full route table: commands, the callback
// dispatcher and FSM-aware text/photo routing.
func (h *Handlers) Routes(reg *tg.Registry) []tg.Route {
	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		IsAdmin: h.isAdmin,
		OnAdminReject: func(c tele.Context) error {
			return tghelpers.SendHTML(c, textAdminDenied)
		},
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.MessageRoutes(h.fsm, reg, router.MessageOptions{
		UnknownPhoto: func(c tele.Context) error {
			return tghelpers.SendHTML(c, textNothingToRespond)
		},
	})...)
	return routes
}
