package create_appointment

import (
	"context"
	"time"

	"github.com/greensheets/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// FindOverlapping возвращает интервалы услуги, пересекающие [start, end).
	// Внутри транзакции строки блокируются до конца транзакции.
	FindOverlapping(ctx context.Context, service string, start, end time.Time) ([]domain.Interval, error)

	// Create сохраняет запись и возвращает ее с присвоенным id
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
