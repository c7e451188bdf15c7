package availability

import (
	"fmt"
	"time"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/pkg/types"
)

const (
	oneHourMinutes  = 60
	twoHoursMinutes = 120
)

// SuggestPeriods подбирает свободные непиковые периоды для бронирования.
//
// Алгоритм: день разбивается на слоты, из подряд идущих доступных слотов
// собираются максимальные непрерывные отрезки. Каждый отрезок длиной не
// меньше minDurationMinutes, начинающийся вне пиковых часов, даёт
// предложение на 1 час от своего начала, а при длине от 2 часов -
// дополнительно предложение на 2 часа. Предложения собираются в порядке
// обхода дня и обрезаются до maxSuggestions.
//
// Это эвристика для удобства выбора, а не оптимизация: гарантируется
// только "первые N подходящих отрезков в хронологическом порядке".
func SuggestPeriods(
	court *domain.Court,
	date time.Time,
	bookings []*domain.Booking,
	rules []domain.PeakRule,
	windowStart, windowEnd types.TimeString,
	granularityMinutes, minDurationMinutes, maxSuggestions int,
	now time.Time,
) ([]domain.SuggestedPeriod, error) {
	if court == nil || !court.HasValidRate() {
		return nil, fmt.Errorf("%w: court has no hourly rate", ErrUnknownCourt)
	}
	if maxSuggestions <= 0 {
		return []domain.SuggestedPeriod{}, nil
	}

	slots, err := DaySlots(windowStart, windowEnd, granularityMinutes)
	if err != nil {
		return nil, err
	}

	// Доступность каждого слота (с учётом прошедшего времени для сегодня)
	available := make([]bool, len(slots))
	for i, slotStart := range slots {
		ok, err := IsSlotAvailable(court.ID, date, slotStart, granularityMinutes, bookings, now)
		if err != nil {
			return nil, err
		}
		available[i] = ok
	}

	suggestions := make([]domain.SuggestedPeriod, 0, maxSuggestions)

	i := 0
	for i < len(slots) && len(suggestions) < maxSuggestions {
		if !available[i] {
			i++
			continue
		}

		// Расширяем отрезок, пока слоты остаются доступными
		j := i
		for j < len(slots) && available[j] {
			j++
		}

		runStart := slots[i]
		runMinutes := (j - i) * granularityMinutes

		if runMinutes >= minDurationMinutes && runMinutes >= oneHourMinutes && !isPeakHour(runStart, rules) {
			period, err := buildPeriod(court, runStart, oneHourMinutes, rules)
			if err != nil {
				return nil, err
			}
			suggestions = append(suggestions, period)

			if runMinutes >= twoHoursMinutes && len(suggestions) < maxSuggestions {
				period, err := buildPeriod(court, runStart, twoHoursMinutes, rules)
				if err != nil {
					return nil, err
				}
				suggestions = append(suggestions, period)
			}
		}

		i = j
	}

	return suggestions, nil
}

// isPeakHour проверяет, попадает ли час начала в какое-либо пиковое правило
func isPeakHour(start types.TimeString, rules []domain.PeakRule) bool {
	hour := start.Hour()
	for i := range rules {
		if rules[i].ContainsHour(hour) {
			return true
		}
	}
	return false
}

// buildPeriod формирует предложение фиксированной длительности с ценой
func buildPeriod(
	court *domain.Court,
	start types.TimeString,
	durationMinutes int,
	rules []domain.PeakRule,
) (domain.SuggestedPeriod, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return domain.SuggestedPeriod{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	price, err := PriceInterval(court, start, end, rules)
	if err != nil {
		return domain.SuggestedPeriod{}, err
	}

	return domain.SuggestedPeriod{
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: durationMinutes,
		Price:           price,
	}, nil
}
