package service

import "context"

// IBotService интерфейс для бизнес-логики бота
type IBotService interface {
	HandleCommand(ctx context.Context, chatID int64, command string, updateID int64) error
	HandleText(ctx context.Context, chatID int64, text string, updateID int64) error
}
