package repository

import "context"

// ISubscriberRepo интерфейс для работы со списком подписчиков.
// Порядок вставки сохраняется, каждый chat_id встречается не более одного раза.
// Add и Remove атомарны: проверка членства и запись идут под одной блокировкой
type ISubscriberRepo interface {
	Load(ctx context.Context) ([]int64, error)
	Save(ctx context.Context, subscribers []int64) error
	Add(ctx context.Context, chatID int64) (bool, error)
	Remove(ctx context.Context, chatID int64) (bool, error)
}
