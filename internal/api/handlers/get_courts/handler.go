package get_courts

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdnv/court-booking-service/internal/api/handlers"
	"github.com/avdnv/court-booking-service/internal/service/courts/models"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/courts
// Query params: includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем branchId из URL
	vars := mux.Vars(r)
	branchIDStr := vars["branchId"]

	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/courts - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	// Парсим includeInactive если указан
	includeInactive := false
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		includeInactive, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /branches/{id}/courts - Invalid includeInactive value: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}

	// Получаем корты филиала
	result, err := h.service.GetCourts(r.Context(), &models.GetCourtsRequest{
		BranchID:        branchID,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		h.logger.Error("GET /branches/{id}/courts - Failed to get courts: branch_id=%d, error=%v",
			branchID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /branches/{id}/courts - Courts retrieved successfully: branch_id=%d, count=%d",
		branchID, len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result.Courts)
}
