package get_availability

import (
	"time"

	"github.com/greensheets/booking-service/internal/domain"
)

// Request модель запроса доступных слотов.
// Указывается либо Date (слоты одного дня плоским списком), либо WeekOf
// (любая дата внутри недели; слоты группируются по дням недели с якорем
// в понедельник). Если не указано ничего — следующая неделя.
type Request struct {
	Service         string
	Date            *time.Time
	WeekOf          *time.Time
	DurationMinutes int // 0 — длительность услуги из конфигурации
}

// Response модель ответа со свободными слотами.
// Для дневного запроса заполняется Slots, для недельного — Days и WeekOf.
type Response struct {
	Service string
	Date    *time.Time
	WeekOf  *time.Time
	Slots   []domain.Slot
	Days    map[string][]domain.Slot // ключ — дата YYYY-MM-DD
}
