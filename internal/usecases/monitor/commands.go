package monitor

import (
	"context"

	"github.com/admin/tg-bots/monitor-bot/internal/usecases/monitor/texts"
)

func (s *Service) HandleCommand(ctx context.Context, chatID int64, command string, updateID int64) error {
	switch command {
	case "status":
		return s.HandleStatus(ctx, chatID)
	case "start":
		return s.HandleStart(ctx, chatID)
	case "stop":
		return s.HandleStop(ctx, chatID)
	default:
		s.sendMessage(ctx, chatID, texts.UnknownCommand)
		return nil
	}
}

// HandleText свободный текст без команды трактуем как нераспознанную команду
func (s *Service) HandleText(ctx context.Context, chatID int64, _ string, updateID int64) error {
	s.sendMessage(ctx, chatID, texts.UnknownCommand)
	return nil
}

// HandleStatus обрабатывает команду /status
func (s *Service) HandleStatus(ctx context.Context, chatID int64) error {
	report := s.BuildStatusReport(ctx)
	s.sendMessage(ctx, chatID, report)
	return nil
}

// HandleStart обрабатывает команду /start: приветствие плюс подписка.
// Проверка членства и запись делаются атомарно на стороне репозитория
func (s *Service) HandleStart(ctx context.Context, chatID int64) error {
	s.sendMessage(ctx, chatID, texts.StartGreeting)

	if _, err := s.SubscriberRepo.Add(ctx, chatID); err != nil {
		s.Log.Error("failed to save subscribers",
			"error", err,
			"chat_id", chatID,
		)
	}

	return nil
}

// HandleStop обрабатывает команду /stop: отписка плюс подтверждение
func (s *Service) HandleStop(ctx context.Context, chatID int64) error {
	if _, err := s.SubscriberRepo.Remove(ctx, chatID); err != nil {
		s.Log.Error("failed to save subscribers",
			"error", err,
			"chat_id", chatID,
		)
	}

	s.sendMessage(ctx, chatID, texts.StopConfirmation)
	return nil
}

// loadSubscribers читает список подписчиков; нечитаемый файл считаем пустым списком
func (s *Service) loadSubscribers(ctx context.Context) []int64 {
	subscribers, err := s.SubscriberRepo.Load(ctx)
	if err != nil {
		s.Log.Error("failed to load subscribers, treating as empty",
			"error", err,
		)
		return []int64{}
	}
	return subscribers
}

// sendMessage отправляет сообщение; ошибка отправки логируется и не всплывает,
// пользователь в любом случае не должен получить HTTP-ошибку от webhook
func (s *Service) sendMessage(ctx context.Context, chatID int64, text string) {
	if err := s.Notifier.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
	}
}
