package service

import "context"

// IWebhookRegistrar интерфейс для регистрации webhook у мессенджера.
// Возвращает сырой JSON-ответ платформы как есть.
type IWebhookRegistrar interface {
	SetWebhook(ctx context.Context, url string) ([]byte, error)
}
