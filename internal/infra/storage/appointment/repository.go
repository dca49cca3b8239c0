package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/greensheets/booking-service/internal/domain"
	"github.com/greensheets/booking-service/pkg/dbmetrics"
	"github.com/greensheets/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями на прием.
// Колонки start_time/end_time — TIMESTAMP без таймзоны: хранится локальное
// время бизнеса, location назначается при чтении.
type Repository struct {
	db       DBExecutor
	location *time.Location
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor, location *time.Location) *Repository {
	return &Repository{db: db, location: location}
}

// Create сохраняет новую запись и возвращает ее с присвоенным id.
// Если в контексте передана активная транзакция, использует её — при
// создании записи с проверкой пересечений это обязательно, иначе два
// конкурентных запроса могут проскочить мимо проверки.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"service",
			"customer_name",
			"customer_phone",
			"start_time",
			"end_time",
		).
		Values(
			appt.Service,
			appt.CustomerName,
			appt.CustomerPhone,
			appt.Start,
			appt.End,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Create: %v", ErrDuplicateSlot, err)
		}
		return nil, classify(err, ErrExecQuery, "Create - execute insert")
	}

	appt.CreatedAt = createdAt.Time
	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service",
		"customer_name",
		"customer_phone",
		"start_time",
		"end_time",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.Service,
		&appt.CustomerName,
		&appt.CustomerPhone,
		&appt.Start,
		&appt.End,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, classify(err, ErrScanRow, "GetByID - scan appointment")
	}

	appt.Start = r.rehydrate(appt.Start)
	appt.End = r.rehydrate(appt.End)
	appt.CreatedAt = createdAt.Time
	return &appt, nil
}

// BusyIntervals возвращает занятые интервалы услуги, пересекающие окно
// [windowStart, windowEnd). Правило пересечения то же, что в
// domain.Overlaps: start_time < windowEnd AND end_time > windowStart.
// Некорректные строки пропускаются, а не роняют запрос.
func (r *Repository) BusyIntervals(ctx context.Context, service string, windowStart, windowEnd time.Time) ([]domain.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time", "end_time").
		From("appointments").
		Where(squirrel.Eq{"service": service}).
		Where(squirrel.Lt{"start_time": windowEnd}).
		Where(squirrel.Gt{"end_time": windowStart}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BusyIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, ErrExecQuery, "BusyIntervals - execute query")
	}
	defer rows.Close()

	intervals := make([]domain.Interval, 0)
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			// Пропускаем некорректную строку
			continue
		}
		intervals = append(intervals, domain.Interval{
			Start: r.rehydrate(start),
			End:   r.rehydrate(end),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, ErrScanRow, "BusyIntervals - rows error")
	}

	return intervals, nil
}

// FindOverlapping возвращает интервалы услуги, пересекающие [start, end).
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы проверка
// пересечений и вставка были атомарны относительно конкурентных писателей.
func (r *Repository) FindOverlapping(ctx context.Context, service string, start, end time.Time) ([]domain.Interval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("start_time", "end_time").
		From("appointments").
		Where(squirrel.Eq{"service": service}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, ErrExecQuery, "FindOverlapping - execute query")
	}
	defer rows.Close()

	intervals := make([]domain.Interval, 0)
	for rows.Next() {
		var s, e time.Time
		if err := rows.Scan(&s, &e); err != nil {
			return nil, classify(err, ErrScanRow, "FindOverlapping - scan row")
		}
		intervals = append(intervals, domain.Interval{Start: r.rehydrate(s), End: r.rehydrate(e)})
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, ErrScanRow, "FindOverlapping - rows error")
	}

	return intervals, nil
}

// rehydrate назначает бизнес-таймзону времени, прочитанному из TIMESTAMP
// колонки (драйвер возвращает его как UTC с теми же стенными часами)
func (r *Repository) rehydrate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), r.location)
}
