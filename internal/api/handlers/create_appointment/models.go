package create_appointment

import (
	"time"

	"github.com/greensheets/booking-service/internal/timeinput"
	createAppointment "github.com/greensheets/booking-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model.
// Время задается одной из трех форм: start+end (ISO), date+time_range,
// date+time (+опционально duration_min). Формы разбирает use case.
type CreateAppointmentRequest struct {
	Service       string `json:"service"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Start         string `json:"start,omitempty"`        // "2026-09-14T09:30:00"
	End           string `json:"end,omitempty"`          // "2026-09-14T10:00:00"
	Date          string `json:"date,omitempty"`         // "2026-09-14"
	Time          string `json:"time,omitempty"`         // "9:30 AM" или "09:30"
	TimeRange     string `json:"time_range,omitempty"`   // "9:30-10:00 AM"
	DurationMin   int    `json:"duration_min,omitempty"` // только с формой date+time
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64  `json:"id"`
	Service       string `json:"service"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Start         string `json:"start"`
	End           string `json:"end"`
	CreatedAt     string `json:"created_at"`
	ICS           string `json:"ics"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		Service:       r.Service,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		TimeInput: timeinput.Input{
			Start:           r.Start,
			End:             r.End,
			Date:            r.Date,
			Time:            r.Time,
			TimeRange:       r.TimeRange,
			DurationMinutes: r.DurationMin,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		Service:       resp.Service,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		Start:         resp.Start.Format(time.RFC3339),
		End:           resp.End.Format(time.RFC3339),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		ICS:           resp.ICS,
	}
}
