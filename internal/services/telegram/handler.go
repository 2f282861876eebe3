package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/tg-bots/monitor-bot/internal/domain"
)

// HandleUpdate основной метод для обработки обновлений webhook
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	message := update.IncomingMessage()
	if message == nil {
		s.Log.Debug("update carries no message", "update_id", update.UpdateID)
		return nil
	}

	return s.HandleMessage(ctx, message, update.UpdateID)
}

// HandleMessage обрабатывает входящее сообщение - роутинг в usecase
func (s *Service) HandleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message.Chat == nil {
		return fmt.Errorf("message has no chat")
	}

	if s.Bot == nil {
		return fmt.Errorf("bot service is not initialized")
	}

	chatID := message.Chat.ID

	var text string
	if message.Text != nil {
		text = *message.Text
	}

	if IsCommand(text) {
		command := ParseCommand(text)
		return s.Bot.HandleCommand(ctx, chatID, command, updateID)
	}

	return s.Bot.HandleText(ctx, chatID, text, updateID)
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
