package appointment

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrDuplicateSlot возвращается, когда слот уже занят (конфликт интервалов
	// или срабатывание уникального индекса). Ожидаемый исход при конкурентной
	// записи, не ретраится.
	ErrDuplicateSlot = errors.New("appointment.repository: slot already booked")

	// ErrStoreUnavailable возвращается при транзиентных ошибках базы
	// (конфликт сериализации, deadlock, обрыв соединения). Ретраится.
	ErrStoreUnavailable = errors.New("appointment.repository: store temporarily unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// PostgreSQL error codes, на которые мы реагируем отдельно
const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	pqConnectionClass      = "08"
)

// IsRetryable сообщает, является ли ошибка транзиентной.
// Конфликт слота ретраить нельзя — это нормальный бизнес-исход.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrStoreUnavailable) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == pqSerializationFailure || pqErr.Code == pqDeadlockDetected {
			return true
		}
		if pqErr.Code.Class() == pqConnectionClass {
			return true
		}
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// classify оборачивает ошибку БД в доменную: транзиентные ошибки становятся
// ErrStoreUnavailable, остальные — fallback
func classify(err error, fallback error, op string) error {
	if IsRetryable(err) {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", fallback, op, err)
}
