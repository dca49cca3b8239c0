package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/greensheets/booking-service/internal/api/handlers"
	getAvailability "github.com/greensheets/booking-service/internal/usecase/get_availability"
)

const (
	msgMissingService  = "service is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDuration = "invalid duration_min, expected a positive integer"
	msgDateAndWeekOf   = "date and week_of are mutually exclusive"
	msgInvalidInput    = "invalid availability parameters"
	msgUnknownService  = "unknown service"
	msgDBLocked        = "storage is temporarily unavailable, please retry"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{service}/availability
// Query params: date (YYYY-MM-DD) или week_of (YYYY-MM-DD), duration_min (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем service из URL
	service := vars["service"]
	if service == "" {
		h.logger.Warn("GET /services/{service}/availability - Missing service")
		handlers.RespondBadRequest(w, handlers.CodeBadRequest, msgMissingService)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	weekOfStr := query.Get("week_of")
	durationStr := query.Get("duration_min")

	if dateStr != "" && weekOfStr != "" {
		h.logger.Warn("GET /services/{service}/availability - Both date and week_of given: service=%s", service)
		handlers.RespondBadRequest(w, handlers.CodeBadRequest, msgDateAndWeekOf)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(service, dateStr, weekOfStr, durationStr)
	if err != nil {
		h.logger.Warn("GET /services/{service}/availability - Invalid query params: service=%s, error=%v", service, err)
		if durationStr != "" && dateStr == "" && weekOfStr == "" {
			handlers.RespondBadRequest(w, handlers.CodeBadRequest, msgInvalidDuration)
		} else {
			handlers.RespondBadRequest(w, handlers.CodeBadRequest, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /services/{service}/availability - Invalid input: service=%s, error=%v", service, err)
			handlers.RespondBadRequest(w, handlers.CodeBadRequest, msgInvalidInput)

		case errors.Is(err, getAvailability.ErrUnknownService):
			h.logger.Warn("GET /services/{service}/availability - Unknown service: service=%s", service)
			handlers.RespondNotFound(w, handlers.CodeUnknownService, msgUnknownService)

		case errors.Is(err, getAvailability.ErrStoreUnavailable):
			h.logger.Error("GET /services/{service}/availability - Store unavailable: service=%s, error=%v", service, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, handlers.CodeDBLocked, msgDBLocked)

		default:
			h.logger.Error("GET /services/{service}/availability - Failed to get availability: service=%s, error=%v", service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /services/{service}/availability - Availability retrieved: service=%s, slots=%d, days=%d",
		service, len(result.Slots), len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
