package get_available_slots

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

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
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
