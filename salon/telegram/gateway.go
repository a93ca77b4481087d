package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"salonbot/core/logger"
	"salonbot/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

// Gateway sends messages outside of an update handler: admin
// notifications and booking reminders. It is constructed before the bot
// exists and attached once the bot is running.
type Gateway struct {
	bot      atomic.Pointer[tele.Bot]
	disp     atomic.Pointer[sender.Dispatcher]
	adminIDs []int64
}

func NewGateway(adminIDs []int64) *Gateway {
	return &Gateway{adminIDs: adminIDs}
}

// Attach wires the running bot and the async dispatcher.
func (g *Gateway) Attach(bot *tele.Bot, disp *sender.Dispatcher) {
	g.bot.Store(bot)
	g.disp.Store(disp)
}

// SendMessage delivers text to the user synchronously. Used by the
// reminder loop, which must observe the send result before persisting
// the one-shot flag.
func (g *Gateway) SendMessage(_ context.Context, userID int64, text string) error {
	bot := g.bot.Load()
	if bot == nil {
		return fmt.Errorf("bot not attached")
	}
	_, err := bot.Send(&tele.User{ID: userID}, text)
	return err
}

// NotifyAdmins fans the text out to every admin through the async
// dispatcher. Failures are logged by the dispatcher; the caller never
// waits on delivery.
func (g *Gateway) NotifyAdmins(ctx context.Context, text string) {
	bot := g.bot.Load()
	if bot == nil {
		logger.Warn(ctx, "tg", "notify.skip",
			slog.String("reason", "bot_not_attached"),
		)
		return
	}
	disp := g.disp.Load()
	for _, adminID := range g.adminIDs {
		to := &tele.User{ID: adminID}
		run := func() error {
			_, err := bot.Send(to, text)
			return err
		}
		if disp == nil {
			if err := run(); err != nil {
				logger.Warn(ctx, "tg", "notify.failed",
					slog.Int64("user_id", adminID),
					slog.String("err", err.Error()),
				)
			}
			continue
		}
		if err := disp.Enqueue(ctx, "notify.admin", "sendMessage", run); err != nil {
			logger.Warn(ctx, "tg", "notify.enqueue_failed",
				slog.Int64("user_id", adminID),
				slog.String("err", err.Error()),
			)
		}
	}
}
