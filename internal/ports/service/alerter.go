package service

import "context"

// IAlerterService интерфейс для обработки входящих алертов
type IAlerterService interface {
	HandleAlert(ctx context.Context, body []byte) error
}
