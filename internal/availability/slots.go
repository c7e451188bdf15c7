// Package availability - движок доступности и ценообразования.
//
// Единственное место в сервисе, где живут проверка пересечения интервалов,
// генерация слотов, расчёт цены и подбор свободных периодов. Все функции
// чистые: состояние (список бронирований, правила) передаётся вызывающим,
// движок ничего не мутирует и не ходит в I/O, поэтому безопасен для
// конкурентных вызовов без блокировок.
package availability

import (
	"fmt"

	"github.com/avdnv/court-booking-service/pkg/types"
)

// DaySlots генерирует начала всех слотов дня от windowStart до windowEnd
// с фиксированным шагом granularityMinutes. Последний слот заканчивается
// не позже windowEnd. Для окна 06:00-22:00 с шагом 30 минут получается
// ровно 32 слота: первый 06:00, последний 21:30.
func DaySlots(windowStart, windowEnd types.TimeString, granularityMinutes int) ([]types.TimeString, error) {
	if granularityMinutes <= 0 {
		return nil, fmt.Errorf("%w: granularity must be positive, got %d", ErrInvalidInterval, granularityMinutes)
	}
	if err := windowStart.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if err := windowEnd.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if !windowStart.IsBefore(windowEnd) {
		return nil, fmt.Errorf("%w: window start %s is not before window end %s", ErrInvalidInterval, windowStart, windowEnd)
	}

	slots := make([]types.TimeString, 0)
	current := windowStart

	for current.IsBefore(windowEnd) {
		// Слот не должен выходить за конец окна
		slotEnd, err := current.AddMinutes(granularityMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(windowEnd) {
			break
		}

		slots = append(slots, current)
		current = slotEnd
	}

	return slots, nil
}
