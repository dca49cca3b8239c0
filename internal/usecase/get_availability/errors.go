package get_availability

import "errors"

var (
	// ErrUnknownService возвращается для услуги, отсутствующей в конфигурации
	ErrUnknownService = errors.New("get_availability: unknown service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrStoreUnavailable возвращается при транзиентной недоступности базы
	ErrStoreUnavailable = errors.New("get_availability: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
