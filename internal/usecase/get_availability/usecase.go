package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greensheets/booking-service/internal/calendar"
	"github.com/greensheets/booking-service/internal/domain"
	appointmentRepo "github.com/greensheets/booking-service/internal/infra/storage/appointment"
)

// UseCase use case получения свободных слотов: генерация кандидатов по
// бизнес-календарю и вычитание занятых интервалов из хранилища
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendar        *calendar.Calendar
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	cal *calendar.Calendar,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendar:        cal,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность слота: явный override или длительность услуги
	duration, err := uc.slotDuration(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: service %q not configured", req.Service)
		return nil, err
	}

	// 3. Текущее время в бизнес-таймзоне
	now := uc.timeProvider.Now().In(uc.calendar.Location())

	// 4. Определяем окно запроса
	windowStart, windowEnd, weekMode := uc.resolveWindow(req, now)

	// 5. Поднимаем начало окна с учетом lead time
	effectiveStart := effectiveWindowStart(uc.calendar, windowStart, now)

	// 6. Занятые интервалы за все окно одним запросом
	busy, err := uc.appointmentRepo.BusyIntervals(ctx, req.Service, windowStart, windowEnd)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrStoreUnavailable) {
			uc.logger.Warn("GetAvailability: store unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("GetAvailability: failed to get busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get busy intervals: %v", ErrInternal, err)
	}

	// 7. Кандидаты минус занятые интервалы, порядок сохраняется
	candidates := generateCandidates(uc.calendar, duration, effectiveStart, windowEnd)
	free := subtractBusy(candidates, busy)

	uc.logger.Info("GetAvailability: service=%s window=%s..%s candidates=%d busy=%d free=%d",
		req.Service, windowStart.Format(domain.DateFormat), windowEnd.Format(domain.DateFormat),
		len(candidates), len(busy), len(free))

	resp := &Response{Service: req.Service}
	if weekMode {
		weekOf := windowStart
		resp.WeekOf = &weekOf
		resp.Days = groupByDay(uc.calendar, free, windowStart, windowEnd)
	} else {
		resp.Date = req.Date
		resp.Slots = free
	}
	return resp, nil
}

// slotDuration возвращает длительность слота для запроса
func (uc *UseCase) slotDuration(req *Request) (time.Duration, error) {
	configured, err := uc.calendar.DurationFor(req.Service)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}
	if req.DurationMinutes > 0 {
		return time.Duration(req.DurationMinutes) * time.Minute, nil
	}
	return configured, nil
}

// resolveWindow вычисляет границы окна запроса.
// Дневной запрос — календарные сутки даты; недельный — неделя с якорем
// в понедельник; без даты — следующая неделя.
// Date и WeekOf несут только календарную дату: берутся ее Y/M/D как есть
// и полночь строится в бизнес-таймзоне. Конвертация instant через In()
// здесь недопустима: полночь UTC западнее Гринвича — еще предыдущий
// местный день, и окно уехало бы на сутки (а неделя — на неделю) назад.
func (uc *UseCase) resolveWindow(req *Request, now time.Time) (time.Time, time.Time, bool) {
	if req.Date != nil {
		dayStart := uc.localMidnight(*req.Date)
		return dayStart, uc.calendar.NextDay(dayStart), false
	}
	if req.WeekOf != nil {
		start, end := uc.calendar.WeekWindow(uc.localMidnight(*req.WeekOf))
		return start, end, true
	}
	// По умолчанию — следующая неделя
	thisMonday, _ := uc.calendar.WeekWindow(now)
	start, end := uc.calendar.WeekWindow(thisMonday.AddDate(0, 0, 7))
	return start, end, true
}

// localMidnight строит полночь календарной даты d в бизнес-таймзоне,
// не интерпретируя d как момент времени
func (uc *UseCase) localMidnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, uc.calendar.Location())
}

// groupByDay раскладывает слоты по дням недели.
// Каждый рабочий день окна получает ключ, даже если слотов в нем нет.
func groupByDay(cal *calendar.Calendar, slots []domain.Slot, windowStart, windowEnd time.Time) map[string][]domain.Slot {
	days := make(map[string][]domain.Slot)
	for day := windowStart.In(cal.Location()); day.Before(windowEnd); day = cal.NextDay(day) {
		if cal.IsWorkingDay(day) {
			days[day.Format(domain.DateFormat)] = make([]domain.Slot, 0)
		}
	}
	for _, slot := range slots {
		key := slot.Start.Format(domain.DateFormat)
		days[key] = append(days[key], slot)
	}
	return days
}
