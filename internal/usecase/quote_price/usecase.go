package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/availability"
	"github.com/avdnv/court-booking-service/internal/domain"
	courtRepo "github.com/avdnv/court-booking-service/internal/infra/storage/court"
	"github.com/avdnv/court-booking-service/pkg/types"
)

// UseCase use case для расчета цены интервала без создания бронирования.
// Цена зависит только от корта и времени, не от даты: множитель
// определяется часом начала интервала.
type UseCase struct {
	courtRepo CourtRepository
	ruleRepo  PricingRuleRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	ruleRepo PricingRuleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo: courtRepo,
		ruleRepo:  ruleRepo,
		logger:    logger,
	}
}

// Execute выполняет use case расчета цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePrice: user=%d, court=%d, time=%s-%s",
		req.UserID, req.CourtID, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("QuotePrice: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("QuotePrice: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Получаем правила ценообразования филиала
	rules, err := uc.ruleRepo.ListByBranch(ctx, court.BranchID)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to get pricing rules for branch=%d: %v", court.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}
	domainRules := derefRules(rules)

	// 4. Рассчитываем цену движком доступности
	price, err := availability.PriceInterval(court, req.StartTime, req.EndTime, domainRules)
	if err != nil {
		uc.logger.Error("QuotePrice: pricing failed for court=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
	}

	// 5. Определяем примененное правило для ответа
	multiplier, peakLabel := appliedRule(req.StartTime.Hour(), domainRules)

	uc.logger.Info("QuotePrice: court=%d, %s-%s, price=%s, multiplier=%s",
		req.CourtID, req.StartTime, req.EndTime, price, multiplier)

	return &Response{
		CourtID:         court.ID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: types.MinutesBetween(req.StartTime, req.EndTime),
		HourlyRate:      court.HourlyRate,
		Multiplier:      multiplier,
		PeakLabel:       peakLabel,
		TotalPrice:      price,
	}, nil
}

// appliedRule возвращает множитель и название первого правила, содержащего
// час начала. Вне пиковых часов - множитель 1 без названия.
func appliedRule(startHour int, rules []domain.PeakRule) (decimal.Decimal, *string) {
	for i := range rules {
		if rules[i].ContainsHour(startHour) {
			label := rules[i].Label
			return rules[i].Multiplier, &label
		}
	}
	return decimal.NewFromInt(1), nil
}
