package availability

import (
	"fmt"
	"time"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/pkg/types"
)

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd)
// и [bStart, bEnd). Граничащие интервалы (a.end == b.start) НЕ пересекаются.
//
// Примеры:
// - Слот 11:30-12:00, бронирование 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Слот 11:30-12:00, бронирование 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, бронирование 12:00-12:30 → НЕТ пересечения (граничат)
//
// Проверка симметрична; интервалы нулевой длины не пересекаются ни с чем,
// в том числе сами с собой, поэтому вырожденные интервалы отсекаются до
// основной проверки.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	if !aStart.IsBefore(aEnd) || !bStart.IsBefore(bEnd) {
		return false
	}
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}

// HasConflict проверяет, пересекается ли предлагаемый интервал с каким-либо
// активным бронированием на том же корте и дате. Отменённые и no-show
// бронирования в проверке не участвуют. excludeBookingID позволяет исключить
// бронирование из проверки (при редактировании против самого себя).
//
// Это та же проверка, что выполняется сервером при создании бронирования
// внутри сериализуемой транзакции - клиентский вызов носит только
// рекомендательный характер.
func HasConflict(
	courtID int64,
	date time.Time,
	start, end types.TimeString,
	bookings []*domain.Booking,
	excludeBookingID *int64,
) (bool, error) {
	if err := validateInterval(start, end); err != nil {
		return false, err
	}

	for _, booking := range bookings {
		if booking.CourtID != courtID {
			continue
		}
		if !isSameDay(booking.BookingDate, date) {
			continue
		}
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}

		if Overlaps(start, end, booking.StartTime, booking.EndTime) {
			return true, nil
		}
	}

	return false, nil
}

// IsSlotAvailable проверяет доступность слота фиксированной ширины.
// Слот недоступен, если пересекается с активным бронированием, а также
// если его начало уже в прошлом (для сегодняшней даты).
func IsSlotAvailable(
	courtID int64,
	date time.Time,
	slotStart types.TimeString,
	granularityMinutes int,
	bookings []*domain.Booking,
	now time.Time,
) (bool, error) {
	slotEnd, err := slotStart.AddMinutes(granularityMinutes)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	// Прошедшие слоты сегодняшнего дня недоступны независимо от бронирований
	if isSameDay(date, now) && slotStart.IsBefore(types.NewTimeString(now)) {
		return false, nil
	}

	conflict, err := HasConflict(courtID, date, slotStart, slotEnd, bookings, nil)
	if err != nil {
		return false, err
	}

	return !conflict, nil
}

// validateInterval проверяет, что интервал непустой и корректный
func validateInterval(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval, start, end)
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
