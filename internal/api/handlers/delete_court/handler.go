package delete_court

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
	msgInvalidCourtID = "некорректный ID корта"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgCourtNotFound  = "корт не найден"
	msgBranchNotFound = "филиал не найден"
	msgForbidden      = "доступ запрещен"
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

// Handle DELETE /api/v1/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем courtId из URL
	vars := mux.Vars(r)
	courtIDStr := vars["courtId"]

	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /courts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем корт (сервис сам проверит права менеджера)
	err = h.service.Delete(r.Context(), courtID, userID)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("DELETE /courts/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, courts.ErrBranchNotFound):
			h.logger.Warn("DELETE /courts/{id} - Branch not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("DELETE /courts/{id} - Access denied: court_id=%d, user_id=%d", courtID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /courts/{id} - Failed to delete court: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /courts/{id} - Court deleted successfully: court_id=%d, user_id=%d", courtID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
