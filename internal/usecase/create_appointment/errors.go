package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrUnknownService возвращается для услуги, отсутствующей в конфигурации
	ErrUnknownService = errors.New("create_appointment: unknown service")

	// ErrMalformedTime возвращается, когда время не удалось распарсить.
	// Не ретраится: вызывающий должен исправить вход.
	ErrMalformedTime = errors.New("create_appointment: malformed time input")

	// ErrPastOrTooSoon возвращается, когда начало раньше now + lead time
	ErrPastOrTooSoon = errors.New("create_appointment: start is in the past or violates lead time")

	// ErrInvalidInterval возвращается, когда end <= start
	ErrInvalidInterval = errors.New("create_appointment: end must be after start")

	// ErrSlotConflict возвращается, когда слот уже занят. Нормальный исход
	// конкурентной записи: не ретраится, клиенту предлагается другой слот.
	ErrSlotConflict = errors.New("create_appointment: slot conflict")

	// ErrStoreUnavailable возвращается после исчерпания повторов при
	// транзиентных ошибках базы. Клиент может повторить позже.
	ErrStoreUnavailable = errors.New("create_appointment: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
