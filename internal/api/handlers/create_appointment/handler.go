package create_appointment

import (
	"errors"
	"net/http"

	"github.com/greensheets/booking-service/internal/api/handlers"
	createAppointment "github.com/greensheets/booking-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "service, customer_name and customer_phone are required"
	msgBadTimePayload     = "could not interpret the requested time; provide start/end, date + time_range, or date + time"
	msgUnknownService     = "unknown service"
	msgStartInPast        = "requested start is in the past or violates the booking lead time"
	msgInvalidInterval    = "end must be after start"
	msgSlotConflict       = "the requested slot is no longer available"
	msgDBLocked           = "storage is temporarily unavailable, please retry"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeBadRequest, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeBadRequest, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrMalformedTime):
			h.logger.Warn("POST /appointments - Malformed time payload: service=%s, error=%v", req.Service, err)
			handlers.RespondBadRequest(w, handlers.CodeBadTimePayload, msgBadTimePayload)

		case errors.Is(err, createAppointment.ErrUnknownService):
			h.logger.Warn("POST /appointments - Unknown service: service=%s", req.Service)
			handlers.RespondNotFound(w, handlers.CodeUnknownService, msgUnknownService)

		case errors.Is(err, createAppointment.ErrPastOrTooSoon):
			h.logger.Warn("POST /appointments - Start in past: service=%s", req.Service)
			handlers.RespondBadRequest(w, handlers.CodeStartInPast, msgStartInPast)

		case errors.Is(err, createAppointment.ErrInvalidInterval):
			h.logger.Warn("POST /appointments - Invalid interval: service=%s", req.Service)
			handlers.RespondBadRequest(w, handlers.CodeInvalidInterval, msgInvalidInterval)

		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: service=%s", req.Service)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrStoreUnavailable):
			h.logger.Error("POST /appointments - Store unavailable: service=%s, error=%v", req.Service, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, handlers.CodeDBLocked, msgDBLocked)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service=%s, error=%v", req.Service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, service=%s",
		result.ID, result.Service)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
