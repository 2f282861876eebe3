package service

import "context"

// IMetricsService интерфейс для мгновенных запросов к метрикам.
// Если значения нет (ошибка транспорта, статус != success, пустой результат),
// возвращается domain.ErrNoValue.
type IMetricsService interface {
	Query(ctx context.Context, expr string) (float64, error)
}
