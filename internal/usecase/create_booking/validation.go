package create_booking

import (
	"fmt"
	"time"

	"github.com/avdnv/court-booking-service/internal/domain"
	venueClient "github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	"github.com/avdnv/court-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateInterval проверяет корректность интервала бронирования:
// начало строго раньше конца, оба времени выровнены по сетке слотов
func validateInterval(start, end types.TimeString, granularityMinutes int) error {
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidTimeRange, start, end)
	}

	if start.MinutesOfDay()%granularityMinutes != 0 {
		return fmt.Errorf("%w: start %s is not aligned to %d-minute grid", ErrInvalidTimeRange, start, granularityMinutes)
	}
	if end.MinutesOfDay()%granularityMinutes != 0 {
		return fmt.Errorf("%w: end %s is not aligned to %d-minute grid", ErrInvalidTimeRange, end, granularityMinutes)
	}

	return nil
}

// validateWindow проверяет, что интервал целиком лежит в окне бронирования
func validateWindow(start, end, windowStart, windowEnd types.TimeString) error {
	if start.IsBefore(windowStart) || end.IsAfter(windowEnd) {
		return fmt.Errorf("%w: interval %s-%s is outside window %s-%s",
			ErrOutsideBookableWindow, start, end, windowStart, windowEnd)
	}
	return nil
}

// validateNotInPast проверяет, что начало бронирования не в прошлом.
// Для будущих дат проверка времени не нужна.
func validateNotInPast(date time.Time, start types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	if isSameDay(date, now) && start.IsBefore(types.NewTimeString(now)) {
		return ErrTimeInPast
	}
	return nil
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

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
