package domain

import "errors"

// ErrNoValue означает, что метрика не вернула значение: транспортная ошибка,
// статус != success или пустой результат схлопываются в эту ошибку
var ErrNoValue = errors.New("metric has no value")
