package availability

import "errors"

var (
	// ErrInvalidInterval возвращается при некорректном интервале:
	// конец не позже начала, либо время вне окна бронирования
	ErrInvalidInterval = errors.New("availability: invalid interval")

	// ErrUnknownCourt возвращается при расчёте цены для корта без тарифа
	ErrUnknownCourt = errors.New("availability: unknown court")
)
