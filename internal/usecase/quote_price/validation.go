package quote_price

import (
	"fmt"

	"github.com/avdnv/court-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}

	return nil
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
