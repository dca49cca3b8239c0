package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/greensheets/booking-service/internal/calendar"
	"github.com/greensheets/booking-service/internal/domain"
	"github.com/greensheets/booking-service/internal/ics"
	appointmentRepo "github.com/greensheets/booking-service/internal/infra/storage/appointment"
	"github.com/greensheets/booking-service/internal/timeinput"
	"github.com/greensheets/booking-service/pkg/retry"
)

// UseCase use case создания записи: нормализация времени, валидация по
// бизнес-календарю и атомарная вставка с проверкой пересечений
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendar        *calendar.Calendar
	normalizer      *timeinput.Normalizer
	txManager       TransactionManager
	timeProvider    TimeProvider
	retryPolicy     retry.Policy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	cal *calendar.Calendar,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendar:        cal,
		normalizer:      timeinput.NewNormalizer(cal.Location()),
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		retryPolicy: retry.Policy{
			MaxAttempts: 3,
			Backoff:     retry.LinearBackoff(100 * time.Millisecond),
		},
		logger: logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции; два конкурентных запроса на пересекающиеся интервалы дают
// ровно один успех и один ErrSlotConflict. Транзиентные ошибки базы
// повторяются ограниченное число раз, конфликт не повторяется никогда.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, customer=%s", req.Service, req.CustomerName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность услуги (и заодно проверка, что услуга существует)
	serviceDuration, err := uc.calendar.DurationFor(req.Service)
	if err != nil {
		uc.logger.Warn("CreateAppointment: service %q not configured", req.Service)
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}

	// 3. Нормализуем время: для формы date+time без явной длительности
	// подставляем длительность услуги
	in := req.TimeInput
	if in.DurationMinutes == 0 {
		in.DurationMinutes = int(serviceDuration.Minutes())
	}

	start, end, err := uc.normalizer.Normalize(in)
	if err != nil {
		uc.logger.Warn("CreateAppointment: time normalization failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedTime, err)
	}

	// 4. Lead time: начало не раньше now + leadMinutes в бизнес-таймзоне
	now := uc.timeProvider.Now().In(uc.calendar.Location())
	minStart := now.Add(uc.calendar.LeadTime())
	if start.Before(minStart) {
		uc.logger.Warn("CreateAppointment: start %s violates lead time (min %s)",
			start.Format(time.RFC3339), minStart.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: start %s is before %s", ErrPastOrTooSoon,
			start.Format(time.RFC3339), minStart.Format(time.RFC3339))
	}

	// 5. Интервал должен быть непустым
	if !end.After(start) {
		uc.logger.Warn("CreateAppointment: invalid interval %s..%s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
		return nil, ErrInvalidInterval
	}

	// 6. Атомарная вставка с проверкой пересечений, с повторами на
	// транзиентных ошибках. Отмена контекста прекращает повторы.
	var created *domain.Appointment

	err = uc.retryPolicy.Do(ctx, appointmentRepo.IsRetryable, func(ctx context.Context) error {
		return uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// 6.1. Ищем пересечения с блокировкой строк (FOR UPDATE)
			overlapping, err := uc.appointmentRepo.FindOverlapping(txCtx, req.Service, start, end)
			if err != nil {
				return err
			}
			if len(overlapping) > 0 {
				return ErrSlotConflict
			}

			// 6.2. Вставляем запись
			appt := &domain.Appointment{
				Service:       req.Service,
				CustomerName:  strings.TrimSpace(req.CustomerName),
				CustomerPhone: strings.TrimSpace(req.CustomerPhone),
				Start:         start,
				End:           end,
			}

			result, err := uc.appointmentRepo.Create(txCtx, appt)
			if err != nil {
				// Уникальный индекс — страховка от гонки: тоже конфликт
				if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
					return ErrSlotConflict
				}
				return err
			}

			created = result
			return nil
		})
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotConflict):
			uc.logger.Warn("CreateAppointment: slot conflict: service=%s start=%s",
				req.Service, start.Format(time.RFC3339))
			return nil, ErrSlotConflict
		case errors.Is(err, appointmentRepo.ErrStoreUnavailable), appointmentRepo.IsRetryable(err):
			uc.logger.Error("CreateAppointment: store unavailable after retries: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			uc.logger.Warn("CreateAppointment: request cancelled: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateAppointment: created id=%d service=%s start=%s end=%s",
		created.ID, created.Service, created.Start.Format(time.RFC3339), created.End.Format(time.RFC3339))

	return &Response{
		ID:            created.ID,
		Service:       created.Service,
		CustomerName:  created.CustomerName,
		CustomerPhone: created.CustomerPhone,
		Start:         created.Start,
		End:           created.End,
		CreatedAt:     created.CreatedAt,
		ICS:           ics.Render(created, now),
	}, nil
}
