package suggest_periods

import (
	"fmt"
	"time"

	"github.com/avdnv/court-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.MinDurationMinutes < 0 {
		return fmt.Errorf("%w: minDurationMinutes must not be negative", ErrInvalidInput)
	}

	if req.MaxSuggestions < 0 {
		return fmt.Errorf("%w: maxSuggestions must not be negative", ErrInvalidInput)
	}

	return nil
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

// derefRules конвертирует слайс указателей репозитория в слайс значений
// для движка доступности
func derefRules(rules []*domain.PeakRule) []domain.PeakRule {
	result := make([]domain.PeakRule, 0, len(rules))
	for _, rule := range rules {
		if rule != nil {
			result = append(result, *rule)
		}
	}
	return result
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
