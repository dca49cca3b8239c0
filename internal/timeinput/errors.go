package timeinput

import "errors"

var (
	// ErrMalformedInput возвращается для любого нераспознанного времени.
	// Ошибка не ретраится: вызывающий должен исправить вход.
	ErrMalformedInput = errors.New("timeinput: malformed time input")
)
