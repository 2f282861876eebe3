package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	server "github.com/admin/tg-bots/monitor-bot/internal/adapters/primary/http"
	adminController "github.com/admin/tg-bots/monitor-bot/internal/adapters/primary/http/controllers/admin"
	alerterController "github.com/admin/tg-bots/monitor-bot/internal/adapters/primary/http/controllers/alerter"
	healthcheckController "github.com/admin/tg-bots/monitor-bot/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/admin/tg-bots/monitor-bot/internal/adapters/primary/http/controllers/telegram"
	prometheusAdapter "github.com/admin/tg-bots/monitor-bot/internal/adapters/secondary/prometheus"
	telegramAdapter "github.com/admin/tg-bots/monitor-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/monitor-bot/internal/pkg/logger"
	subscriberRepo "github.com/admin/tg-bots/monitor-bot/internal/repository/subscriber"
	telegramService "github.com/admin/tg-bots/monitor-bot/internal/services/telegram"
	"github.com/admin/tg-bots/monitor-bot/internal/usecases/monitor"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running monitor-bot")

	if a.Cfg.fileErr != nil {
		a.Log.Warn("config file ignored", "error", a.Cfg.fileErr)
	}

	if err := a.Cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	tgClient := telegramAdapter.NewClient(a.Cfg.Telegram, a.Log)
	promClient := prometheusAdapter.NewClient(a.Cfg.Prometheus, a.Log)
	subsRepo := subscriberRepo.New(a.Cfg.Subscribers, a.Log)

	tgService := telegramService.New(tgClient, a.Log)
	monitorService := monitor.New(subsRepo, tgService, promClient, a.Cfg.AdminChatID, a.Log)
	tgService.SetBotService(monitorService)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log,
		healthcheckController.New(a.Log),
		telegramController.New(tgService, a.Log),
		alerterController.New(monitorService, a.Log),
		adminController.New(tgClient, a.Log),
	)

	a.setupBot(ctx, tgClient)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

// setupBot проверяет токен, регистрирует меню команд и, если задан
// публичный URL, сразу ставит webhook. Все шаги warn-only:
// без них сервис всё равно работоспособен
func (a *App) setupBot(ctx context.Context, client *telegramAdapter.Client) {
	if err := client.GetMe(ctx); err != nil {
		a.Log.Warn("bot token check failed", "error", err)
	}

	commands := []telegramAdapter.BotCommand{
		{Command: "status", Description: "Отчёт по метрикам сервера"},
		{Command: "start", Description: "Подписаться на оповещения"},
		{Command: "stop", Description: "Отписаться от оповещений"},
	}
	if err := client.SetMyCommands(ctx, commands); err != nil {
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	if a.Cfg.Telegram.WebhookURL != "" {
		if _, err := client.SetWebhook(ctx, a.Cfg.Telegram.WebhookURL); err != nil {
			a.Log.Warn("failed to set webhook on startup",
				"error", err,
				"webhook_url", a.Cfg.Telegram.WebhookURL,
			)
		}
	}
}
