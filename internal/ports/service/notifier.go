package service

import "context"

// INotifier интерфейс для отправки текстовых уведомлений в чат
type INotifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}
