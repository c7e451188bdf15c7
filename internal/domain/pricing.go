package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeakRule is an hour-range-keyed price multiplier.
// The range is half-open: [StartHour, EndHour).
type PeakRule struct {
	ID         int64
	BranchID   int64
	StartHour  int
	EndHour    int
	Label      string
	Multiplier decimal.Decimal
	Position   int // Порядок применения: выигрывает первое совпавшее правило
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ContainsHour reports whether the hour of day falls inside [StartHour, EndHour)
func (r *PeakRule) ContainsHour(hour int) bool {
	return hour >= r.StartHour && hour < r.EndHour
}

// IsValid checks the rule's range and multiplier
func (r *PeakRule) IsValid() bool {
	return r.StartHour >= 0 && r.StartHour < r.EndHour && r.EndHour <= 24 &&
		r.Multiplier.IsPositive()
}
