package get_availability

import (
	"fmt"

	"github.com/greensheets/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Date != nil && req.WeekOf != nil {
		return fmt.Errorf("%w: date and week_of are mutually exclusive", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 {
		if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: duration_min must be between %d and %d",
				ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
	}

	return nil
}
