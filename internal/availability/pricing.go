package availability

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/pkg/types"
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	one            = decimal.NewFromInt(1)
)

// PriceInterval рассчитывает стоимость интервала [start, end) для корта.
//
// base = hourlyRate * durationMinutes / 60 (дробные часы допустимы).
// Множитель выбирается по ЧАСУ НАЧАЛА интервала: первое правило из rules,
// чей диапазон [StartHour, EndHour) содержит час начала; если ни одно не
// подошло - множитель 1. Интервал, начавшийся вне пикового часа и
// захвативший его, целиком оплачивается по стартовому тарифу - это
// сознательное поведение, а не упрощение.
//
// Итог округляется до целой денежной единицы (половина - вверх).
func PriceInterval(
	court *domain.Court,
	start, end types.TimeString,
	rules []domain.PeakRule,
) (decimal.Decimal, error) {
	if court == nil || !court.HasValidRate() {
		return decimal.Zero, fmt.Errorf("%w: court has no hourly rate", ErrUnknownCourt)
	}
	if err := validateInterval(start, end); err != nil {
		return decimal.Zero, err
	}

	durationMinutes := decimal.NewFromInt(int64(types.MinutesBetween(start, end)))
	baseAmount := court.HourlyRate.Mul(durationMinutes).Div(minutesPerHour)

	multiplier := multiplierForStart(start, rules)

	return baseAmount.Mul(multiplier).Round(0), nil
}

// multiplierForStart возвращает множитель первого правила, содержащего
// час начала интервала. Правила просматриваются в переданном порядке.
func multiplierForStart(start types.TimeString, rules []domain.PeakRule) decimal.Decimal {
	startHour := start.Hour()
	for i := range rules {
		if rules[i].ContainsHour(startHour) {
			return rules[i].Multiplier
		}
	}
	return one
}
