package quote_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdnv/court-booking-service/internal/api/handlers"
	quotePrice "github.com/avdnv/court-booking-service/internal/usecase/quote_price"
	"github.com/avdnv/court-booking-service/pkg/types"
)

const (
	msgInvalidCourtID   = "некорректный ID корта"
	msgTimeRequired     = "параметры startTime и endTime обязательны"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange = "время начала должно быть раньше времени окончания"
	msgCourtNotFound    = "корт не найден"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/quote?startTime=HH:MM&endTime=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/quote - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	query := r.URL.Query()
	startTime := query.Get("startTime")
	endTime := query.Get("endTime")
	if startTime == "" || endTime == "" {
		h.logger.Warn("GET /courts/{id}/quote - Missing time parameters: court_id=%d", courtID)
		handlers.RespondBadRequest(w, msgTimeRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quotePrice.Request{
		CourtID:   courtID,
		StartTime: types.TimeString(startTime),
		EndTime:   types.TimeString(endTime),
	})
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/quote - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, quotePrice.ErrInvalidTimeRange):
			h.logger.Warn("GET /courts/{id}/quote - Invalid time range: court_id=%d, start=%s, end=%s",
				courtID, startTime, endTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /courts/{id}/quote - Failed: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/quote - Price calculated: court_id=%d, start=%s, end=%s, total=%s",
		courtID, startTime, endTime, result.TotalPrice.String())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
