package update_pricing_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdnv/court-booking-service/internal/api/handlers"
	"github.com/avdnv/court-booking-service/internal/api/middleware"
	"github.com/avdnv/court-booking-service/internal/service/pricing"
)

const (
	msgInvalidBranchID    = "некорректный ID филиала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBranchNotFound     = "филиал не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidRule        = "некорректное правило ценообразования"
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

// Handle PUT /api/v1/branches/{branchId}/pricing-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем branchId из URL
	vars := mux.Vars(r)
	branchIDStr := vars["branchId"]

	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /branches/{id}/pricing-rules - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /branches/{id}/pricing-rules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req ReplaceRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /branches/{id}/pricing-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Заменяем правила (сервис сам проверит права менеджера)
	result, err := h.service.ReplaceRules(r.Context(), req.ToServiceRequest(branchID, userID))
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrBranchNotFound):
			h.logger.Warn("PUT /branches/{id}/pricing-rules - Branch not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, pricing.ErrAccessDenied):
			h.logger.Warn("PUT /branches/{id}/pricing-rules - Access denied: branch_id=%d, user_id=%d",
				branchID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, pricing.ErrInvalidRule):
			h.logger.Warn("PUT /branches/{id}/pricing-rules - Invalid rule: branch_id=%d, error=%v", branchID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PUT /branches/{id}/pricing-rules - Failed to replace rules: branch_id=%d, error=%v",
				branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /branches/{id}/pricing-rules - Rules replaced successfully: branch_id=%d, count=%d, user_id=%d",
		branchID, len(result.Rules), userID)
	handlers.RespondJSON(w, http.StatusOK, result.Rules)
}
