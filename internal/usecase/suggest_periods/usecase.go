package suggest_periods

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

// UseCase use case для подбора свободных непиковых периодов
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

// Execute выполняет use case подбора периодов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestPeriods: user=%d, court=%d, date=%s",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestPeriods: validation failed: %v", err)
		return nil, err
	}

	// 2. Подставляем значения по умолчанию
	minDuration := req.MinDurationMinutes
	if minDuration == 0 {
		minDuration = domain.DefaultMinSuggestionMinutes
	}
	maxSuggestions := req.MaxSuggestions
	if maxSuggestions == 0 {
		maxSuggestions = domain.DefaultMaxSuggestions
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("SuggestPeriods: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("SuggestPeriods: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("SuggestPeriods: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("SuggestPeriods: court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 5. Определяем окно бронирования на дату
	windowStart, windowEnd, open, err := uc.resolveWindow(ctx, court.BranchID, req.Date)
	if err != nil {
		return nil, err
	}
	if !open {
		uc.logger.Info("SuggestPeriods: branch=%d is closed on %s", court.BranchID, req.Date.Format(domain.DateFormat))
		return &Response{
			CourtID: court.ID,
			Date:    req.Date,
			Periods: []Period{},
		}, nil
	}

	// 6. Получаем правила ценообразования филиала
	rules, err := uc.ruleRepo.ListByBranch(ctx, court.BranchID)
	if err != nil {
		uc.logger.Error("SuggestPeriods: failed to get pricing rules for branch=%d: %v", court.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}
	domainRules := derefRules(rules)

	// 7. Получаем активные бронирования корта на дату
	filter := domain.CourtBookingsFilter{
		CourtID:         req.CourtID,
		Date:            &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByCourtAndDate(ctx, filter)
	if err != nil {
		uc.logger.Error("SuggestPeriods: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Подбираем периоды движком доступности
	periods, err := availability.SuggestPeriods(
		court, req.Date, bookings, domainRules,
		windowStart, windowEnd,
		domain.DefaultGranularityMinutes, minDuration, maxSuggestions,
		now,
	)
	if err != nil {
		uc.logger.Error("SuggestPeriods: engine failed for court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: suggestion engine failed: %v", ErrInternal, err)
	}

	uc.logger.Info("SuggestPeriods: produced %d suggestions for court=%d, date=%s",
		len(periods), req.CourtID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourtID: court.ID,
		Date:    req.Date,
		Periods: fromDomainPeriods(periods),
	}, nil
}

// resolveWindow определяет окно бронирования филиала на дату.
// При недоступности VenueService используется окно по умолчанию 06:00-22:00.
func (uc *UseCase) resolveWindow(ctx context.Context, branchID int64, date time.Time) (start, end types.TimeString, open bool, err error) {
	branch, branchErr := uc.venueClient.GetBranch(ctx, branchID)
	if branchErr != nil {
		if errors.Is(branchErr, venueClient.ErrBranchNotFound) {
			uc.logger.Warn("SuggestPeriods: branch id=%d not found", branchID)
			return "", "", false, ErrBranchNotFound
		}
		uc.logger.Error("SuggestPeriods: failed to get branch id=%d, using default window: %v", branchID, branchErr)
		return domain.BookableDayStart, domain.BookableDayEnd, true, nil
	}

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

// fromDomainPeriods конвертирует предложения движка в DTO
func fromDomainPeriods(periods []domain.SuggestedPeriod) []Period {
	result := make([]Period, len(periods))
	for i, p := range periods {
		result[i] = Period{
			StartTime:       p.StartTime,
			EndTime:         p.EndTime,
			DurationMinutes: p.DurationMinutes,
			Price:           p.Price,
		}
	}
	return result
}
