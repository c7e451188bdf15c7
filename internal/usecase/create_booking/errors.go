package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtInactive возвращается, когда корт деактивирован
	ErrCourtInactive = errors.New("create_booking: court is not active")

	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("create_booking: branch not found")

	// ErrBranchClosed возвращается, когда филиал закрыт в указанную дату
	ErrBranchClosed = errors.New("create_booking: branch is closed on this date")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeRange возвращается при некорректном временном интервале
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrOutsideBookableWindow возвращается, когда интервал выходит за рабочие часы
	ErrOutsideBookableWindow = errors.New("create_booking: interval is outside bookable hours")

	// ErrSlotConflict возвращается, когда интервал пересекается с активным бронированием
	ErrSlotConflict = errors.New("create_booking: interval conflicts with an existing booking")

	// ErrTimeInPast возвращается при попытке забронировать прошедшее время
	ErrTimeInPast = errors.New("create_booking: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
