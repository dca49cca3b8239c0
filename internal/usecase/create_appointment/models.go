package create_appointment

import (
	"time"

	"github.com/greensheets/booking-service/internal/timeinput"
)

// Request модель запроса на создание записи
type Request struct {
	Service       string          // Название услуги из конфигурации
	CustomerName  string          // Имя клиента (непрозрачно для движка)
	CustomerPhone string          // Телефон клиента
	TimeInput     timeinput.Input // Время в одной из поддерживаемых форм
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64
	Service       string
	CustomerName  string
	CustomerPhone string
	Start         time.Time
	End           time.Time
	CreatedAt     time.Time
	ICS           string // VCALENDAR вложение для подтверждения
}
