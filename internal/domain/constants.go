package domain

import "github.com/avdnv/court-booking-service/pkg/types"

// Bookable day window and slot defaults
const (
	DefaultGranularityMinutes   = 30
	DefaultMinSuggestionMinutes = 60
	DefaultMaxSuggestions       = 4
)

// BookableDayStart и BookableDayEnd задают окно бронирования по умолчанию,
// если у филиала нет собственных рабочих часов
var (
	BookableDayStart = types.TimeString("06:00")
	BookableDayEnd   = types.TimeString("22:00")
)

// Business validation constants
const (
	MinCourtNameLength          = 1
	MaxCourtNameLength          = 100
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxPeakRulesPerBranch       = 20
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не участвующих в проверке конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByAdmin,
	StatusNoShow,
}

// ActiveStatuses список статусов, занимающих свой интервал
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
