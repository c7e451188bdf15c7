package suggest_periods

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdnv/court-booking-service/internal/api/handlers"
	"github.com/avdnv/court-booking-service/internal/domain"
	suggestPeriods "github.com/avdnv/court-booking-service/internal/usecase/suggest_periods"
)

const (
	msgInvalidCourtID = "некорректный ID корта"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired   = "параметр date обязателен"
	msgInvalidParams  = "некорректные параметры подбора"
	msgCourtNotFound  = "корт не найден"
	msgCourtInactive  = "корт недоступен для бронирования"
	msgBranchNotFound = "филиал не найден"
	msgDateInPast     = "дата не может быть в прошлом"
)

type Handler struct {
	useCase SuggestPeriodsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestPeriodsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/suggested-periods?date=YYYY-MM-DD&minDurationMinutes=60&maxSuggestions=4
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/suggested-periods - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /courts/{id}/suggested-periods - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/suggested-periods - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	minDuration, err := optionalIntParam(query.Get("minDurationMinutes"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	maxSuggestions, err := optionalIntParam(query.Get("maxSuggestions"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &suggestPeriods.Request{
		CourtID:            courtID,
		Date:               date,
		MinDurationMinutes: minDuration,
		MaxSuggestions:     maxSuggestions,
	})
	if err != nil {
		switch {
		case errors.Is(err, suggestPeriods.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/suggested-periods - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, suggestPeriods.ErrCourtInactive):
			h.logger.Warn("GET /courts/{id}/suggested-periods - Court inactive: court_id=%d", courtID)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, suggestPeriods.ErrBranchNotFound):
			h.logger.Warn("GET /courts/{id}/suggested-periods - Branch not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, suggestPeriods.ErrInvalidDate):
			h.logger.Warn("GET /courts/{id}/suggested-periods - Date in past: court_id=%d, date=%s", courtID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, suggestPeriods.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/suggested-periods - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /courts/{id}/suggested-periods - Failed: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/suggested-periods - %d periods returned: court_id=%d, date=%s",
		len(result.Periods), courtID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// optionalIntParam парсит необязательный числовой параметр запроса.
// Пустое значение трактуется как 0 (значение по умолчанию в use case).
func optionalIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
