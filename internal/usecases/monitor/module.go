package monitor

import (
	"log/slog"

	"github.com/admin/tg-bots/monitor-bot/internal/ports/repository"
	"github.com/admin/tg-bots/monitor-bot/internal/ports/service"
)

// Service бизнес-логика бота мониторинга
type Service struct {
	SubscriberRepo repository.ISubscriberRepo
	Notifier       service.INotifier
	Metrics        service.IMetricsService
	AdminChatID    int64 // 0 - резервный получатель не настроен
	Log            *slog.Logger
}

// New создаёт новый сервис бота мониторинга
func New(
	subscriberRepo repository.ISubscriberRepo,
	notifier service.INotifier,
	metrics service.IMetricsService,
	adminChatID int64,
	log *slog.Logger,
) *Service {
	return &Service{
		SubscriberRepo: subscriberRepo,
		Notifier:       notifier,
		Metrics:        metrics,
		AdminChatID:    adminChatID,
		Log:            log,
	}
}
