package telegram

import (
	"context"
	"fmt"
)

// SendMessage отправляет текстовое сообщение пользователю (реализация INotifier)
func (s *Service) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := s.Client.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	s.Log.Debug("message sent successfully",
		"chat_id", chatID,
	)
	return nil
}
