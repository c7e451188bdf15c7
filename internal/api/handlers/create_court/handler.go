package create_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avdnv/court-booking-service/internal/api/handlers"
	"github.com/avdnv/court-booking-service/internal/api/middleware"
	"github.com/avdnv/court-booking-service/internal/service/courts"
)

const (
	msgInvalidBranchID    = "некорректный ID филиала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgBranchNotFound     = "филиал не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidCourt       = "некорректные данные корта"
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

// Handle POST /api/v1/branches/{branchId}/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем branchId из URL
	vars := mux.Vars(r)
	branchIDStr := vars["branchId"]

	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /branches/{id}/courts - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /branches/{id}/courts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /branches/{id}/courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем корт (сервис сам проверит права менеджера)
	result, err := h.service.Create(r.Context(), req.ToServiceRequest(branchID, userID))
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrBranchNotFound):
			h.logger.Warn("POST /branches/{id}/courts - Branch not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("POST /branches/{id}/courts - Access denied: branch_id=%d, user_id=%d",
				branchID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("POST /branches/{id}/courts - Invalid court data: branch_id=%d, error=%v", branchID, err)
			handlers.RespondBadRequest(w, msgInvalidCourt)

		default:
			h.logger.Error("POST /branches/{id}/courts - Failed to create court: branch_id=%d, error=%v",
				branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /branches/{id}/courts - Court created successfully: court_id=%d, branch_id=%d, user_id=%d",
		result.ID, branchID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
