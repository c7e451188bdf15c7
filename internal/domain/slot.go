package domain

import (
	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/pkg/types"
)

// AvailableSlot represents one fixed-width subdivision of the bookable day
// with its derived availability and price
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
	Price           decimal.Decimal
}

// SuggestedPeriod represents a recommended booking interval produced by the
// availability engine: a contiguous free off-peak run of slots
type SuggestedPeriod struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Price           decimal.Decimal
}
