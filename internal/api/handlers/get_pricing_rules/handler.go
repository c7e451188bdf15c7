package get_pricing_rules

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdnv/court-booking-service/internal/api/handlers"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
)

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/pricing-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем branchId из URL
	vars := mux.Vars(r)
	branchIDStr := vars["branchId"]

	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id}/pricing-rules - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	// Получаем правила ценообразования филиала
	result, err := h.service.GetRules(r.Context(), branchID)
	if err != nil {
		h.logger.Error("GET /branches/{id}/pricing-rules - Failed to get rules: branch_id=%d, error=%v",
			branchID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /branches/{id}/pricing-rules - Rules retrieved successfully: branch_id=%d, count=%d",
		branchID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result.Rules)
}
