package telegram

import (
	"log/slog"

	TgClient "github.com/admin/tg-bots/monitor-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/monitor-bot/internal/ports/service"
)

// Service роутинг обновлений Telegram в бизнес-логику бота
type Service struct {
	Client *TgClient.Client
	Bot    service.IBotService
	Log    *slog.Logger
}

func New(client *TgClient.Client, log *slog.Logger) *Service {
	return &Service{
		Client: client,
		Log:    log,
	}
}

// SetBotService устанавливает бизнес-логику после создания
// (use case зависит от сервиса как от INotifier, поэтому инициализация двухфазная)
func (s *Service) SetBotService(bot service.IBotService) {
	s.Bot = bot
}
