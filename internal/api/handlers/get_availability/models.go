package get_availability

import (
	"fmt"
	"strconv"
	"time"

	"github.com/greensheets/booking-service/internal/domain"
	getAvailability "github.com/greensheets/booking-service/internal/usecase/get_availability"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityResponse HTTP response model.
// Для дневного запроса заполняются date и slots, для недельного — week_of
// и days (ключ — дата YYYY-MM-DD, рабочие дни без слотов дают пустой список).
type AvailabilityResponse struct {
	Service string                    `json:"service"`
	Date    string                    `json:"date,omitempty"`
	WeekOf  string                    `json:"week_of,omitempty"`
	Slots   []SlotResponse            `json:"slots,omitempty"`
	Days    map[string][]SlotResponse `json:"days,omitempty"`
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
func ToUseCaseRequest(service, dateStr, weekOfStr, durationStr string) (*getAvailability.Request, error) {
	req := &getAvailability.Request{Service: service}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse date: %w", err)
		}
		req.Date = &date
	}

	if weekOfStr != "" {
		weekOf, err := time.Parse(domain.DateFormat, weekOfStr)
		if err != nil {
			return nil, fmt.Errorf("parse week_of: %w", err)
		}
		req.WeekOf = &weekOf
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, fmt.Errorf("parse duration_min: %w", err)
		}
		req.DurationMinutes = duration
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{Service: resp.Service}

	if resp.Date != nil {
		out.Date = resp.Date.Format(domain.DateFormat)
		out.Slots = toSlotResponses(resp.Slots)
	}

	if resp.WeekOf != nil {
		out.WeekOf = resp.WeekOf.Format(domain.DateFormat)
		out.Days = make(map[string][]SlotResponse, len(resp.Days))
		for day, slots := range resp.Days {
			out.Days[day] = toSlotResponses(slots)
		}
	}

	return out
}

func toSlotResponses(slots []domain.Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			Start: s.Start.Format(time.RFC3339),
			End:   s.End.Format(time.RFC3339),
		})
	}
	return out
}
