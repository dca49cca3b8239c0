package create_appointment

import (
	"fmt"
	"strings"

	"github.com/greensheets/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer_name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer_name exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return fmt.Errorf("%w: customer_phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customer_phone exceeds %d characters", ErrInvalidInput, domain.MaxCustomerPhoneLength)
	}

	return nil
}
