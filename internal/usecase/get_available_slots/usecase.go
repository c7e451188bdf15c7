package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdnv/court-booking-service/internal/availability"
	"github.com/avdnv/court-booking-service/internal/domain"
	courtRepo "github.com/avdnv/court-booking-service/internal/infra/storage/court"
	venueClient "github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	"github.com/avdnv/court-booking-service/pkg/types"
)

// UseCase use case для получения слотов корта на дату
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	ruleRepo     PricingRuleRepository
	venueClient  VenueServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	ruleRepo PricingRuleRepository,
	venueClient VenueServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		ruleRepo:     ruleRepo,
		venueClient:  venueClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Возвращает все слоты дня с признаком доступности и ценой каждого
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, court=%d, date=%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не должна быть в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("GetAvailableSlots: court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 5. Определяем окно бронирования на дату
	windowStart, windowEnd, open, err := uc.resolveWindow(ctx, court.BranchID, req)
	if err != nil {
		return nil, err
	}
	if !open {
		uc.logger.Info("GetAvailableSlots: branch=%d is closed on %s", court.BranchID, req.Date.Format(domain.DateFormat))
		return &Response{
			CourtID:  court.ID,
			BranchID: court.BranchID,
			Date:     req.Date,
			Slots:    []domain.AvailableSlot{},
		}, nil
	}

	// 6. Получаем правила ценообразования филиала
	rules, err := uc.ruleRepo.ListByBranch(ctx, court.BranchID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get pricing rules for branch=%d: %v", court.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}
	domainRules := derefRules(rules)

	// 7. Получаем активные бронирования корта на дату
	filter := domain.CourtBookingsFilter{
		CourtID:         req.CourtID,
		Date:            &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByCourtAndDate(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Генерируем слоты дня
	slotStarts, err := availability.DaySlots(windowStart, windowEnd, domain.DefaultGranularityMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 9. Вычисляем доступность и цену каждого слота
	slots := make([]domain.AvailableSlot, 0, len(slotStarts))
	for _, slotStart := range slotStarts {
		available, err := availability.IsSlotAvailable(
			court.ID, req.Date, slotStart, domain.DefaultGranularityMinutes, bookings, now)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: availability check failed for slot %s: %v", slotStart, err)
			return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		slotEnd, err := slotStart.AddMinutes(domain.DefaultGranularityMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, err)
		}

		price, err := availability.PriceInterval(court, slotStart, slotEnd, domainRules)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: pricing failed for slot %s: %v", slotStart, err)
			return nil, fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
		}

		slots = append(slots, domain.AvailableSlot{
			StartTime:       slotStart,
			DurationMinutes: domain.DefaultGranularityMinutes,
			Available:       available,
			Price:           price,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for court=%d, date=%s",
		len(slots), req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourtID:  court.ID,
		BranchID: court.BranchID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}

// resolveWindow определяет окно бронирования корта на дату.
// Расписание филиала из VenueService приоритетнее окна по умолчанию;
// при недоступности VenueService используется окно 06:00-22:00.
func (uc *UseCase) resolveWindow(ctx context.Context, branchID int64, req *Request) (start, end types.TimeString, open bool, err error) {
	branch, branchErr := uc.venueClient.GetBranch(ctx, branchID)
	if branchErr != nil {
		if errors.Is(branchErr, venueClient.ErrBranchNotFound) {
			uc.logger.Warn("GetAvailableSlots: branch id=%d not found", branchID)
			return "", "", false, ErrBranchNotFound
		}
		// VenueService недоступен - работаем по окну по умолчанию
		uc.logger.Error("GetAvailableSlots: failed to get branch id=%d, using default window: %v", branchID, branchErr)
		return domain.BookableDayStart, domain.BookableDayEnd, true, nil
	}

	return branchWindow(branch, req.Date)
}

// branchWindow извлекает рабочие часы филиала на день недели даты.
// Расписание без записи на день трактуется как окно по умолчанию,
// явное is_open=false - как выходной.
func branchWindow(branch *venueClient.Branch, date time.Time) (start, end types.TimeString, open bool, err error) {
	day, found := branch.Schedule[weekdayKey(date)]
	if !found {
		return domain.BookableDayStart, domain.BookableDayEnd, true, nil
	}
	if !day.IsOpen {
		return "", "", false, nil
	}
	if day.OpensAt.Validate() != nil || day.ClosesAt.Validate() != nil || !day.OpensAt.IsBefore(day.ClosesAt) {
		return "", "", false, fmt.Errorf("%w: branch schedule has invalid working hours", ErrInternal)
	}
	return day.OpensAt, day.ClosesAt, true, nil
}

// weekdayKey преобразует день недели в ключ расписания филиала
func weekdayKey(date time.Time) string {
	switch date.Weekday() {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
