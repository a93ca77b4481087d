// Package app boots the salon bot: configuration, logging, database,
// services, handlers and the Telegram runtime.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"salonbot/core/database"
	"salonbot/core/logger"
	tg "salonbot/core/telegram"
	"salonbot/core/telegram/state"
	"salonbot/salon/config"
	"salonbot/salon/service"
	"salonbot/salon/storage"
	salontg "salonbot/salon/telegram"

	tele "gopkg.in/telebot.v4"
)

// Run wires everything together and blocks until shutdown.
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.InitLogger(cfg.CoreConfig()); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Shutdown() }()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := database.RunMigrations(cfg.Database); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	loc, err := cfg.Salon.Location()
	if err != nil {
		return err
	}

	slotRepo := storage.NewSlotRepo(db)
	bookingRepo := storage.NewBookingRepo(db)
	portfolioRepo := storage.NewPortfolioRepo(db)
	reviewRepo := storage.NewReviewRepo(db)

	gateway := salontg.NewGateway(cfg.Core.Telegram.AdminIDs)
	bookingSvc := service.NewBooking(slotRepo, bookingRepo, gateway, loc)
	contentSvc := service.NewContent(portfolioRepo, reviewRepo)
	reminder := service.NewReminder(bookingRepo, gateway, cfg.Salon.ReminderInterval(), loc)

	fsm := state.NewMemoryManager()
	reg := tg.NewRegistry()
	handlers := salontg.NewHandlers(cfg, bookingSvc, contentSvc, fsm)
	handlers.Register(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	onLimited := func(c tele.Context) error {
		_ = c.Respond(&tele.CallbackResponse{Text: "Слишком часто 😅"})
		return nil
	}

	return tg.RunTelegram(ctx, tg.RunOptions{
		Config:      cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(cfg.CoreConfig(), onLimited),
		Routes:      handlers.Routes(reg),
		OnStart: func(ctx context.Context, rt tg.Runtime) error {
			gateway.Attach(rt.Bot, rt.Dispatcher)
			go reminder.Run(ctx)
			logger.Info(ctx, "app", "ready")
			return nil
		},
		OnStop: func(ctx context.Context, _ tg.Runtime) error {
			logger.Info(ctx, "app", "shutdown")
			return nil
		},
	})
}
