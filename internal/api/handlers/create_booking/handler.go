package create_booking

import (
	"errors"
	"net/http"

	"github.com/avdnv/court-booking-service/internal/api/handlers"
	"github.com/avdnv/court-booking-service/internal/api/middleware"
	createBooking "github.com/avdnv/court-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized       = "требуется аутентификация"
	msgSlotConflict       = "выбранный интервал пересекается с существующим бронированием"
	msgCourtNotFound      = "корт не найден"
	msgCourtInactive      = "корт недоступен для бронирования"
	msgBranchNotFound     = "филиал не найден"
	msgBranchClosed       = "филиал закрыт в выбранную дату"
	msgInvalidDate        = "некорректная дата бронирования"
	msgInvalidTimeRange   = "некорректный временной интервал"
	msgOutsideWindow      = "интервал выходит за рабочие часы филиала"
	msgTimeInPast         = "нельзя забронировать прошедшее время"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: customer_id=%d, court_id=%d", customerID, req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCourtInactive):
			h.logger.Warn("POST /bookings - Court inactive: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgCourtInactive)

		case errors.Is(err, createBooking.ErrBranchNotFound):
			h.logger.Warn("POST /bookings - Branch not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, createBooking.ErrBranchClosed):
			h.logger.Warn("POST /bookings - Branch closed: customer_id=%d, court_id=%d", customerID, req.CourtID)
			handlers.RespondBadRequest(w, msgBranchClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: customer_id=%d, date=%s", customerID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: customer_id=%d, start=%s, end=%s",
				customerID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrOutsideBookableWindow):
			h.logger.Warn("POST /bookings - Outside bookable window: customer_id=%d, court_id=%d, start=%s, end=%s",
				customerID, req.CourtID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgOutsideWindow)

		case errors.Is(err, createBooking.ErrTimeInPast):
			h.logger.Warn("POST /bookings - Time in past: customer_id=%d, court_id=%d", customerID, req.CourtID)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, court_id=%d, error=%v",
				customerID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, court_id=%d",
		result.ID, customerID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
