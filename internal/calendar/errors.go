package calendar

import "errors"

var (
	// ErrUnknownService возвращается для услуги, отсутствующей в конфигурации
	ErrUnknownService = errors.New("calendar: unknown service")
)
