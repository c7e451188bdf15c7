package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Court represents a bookable court at a branch
type Court struct {
	ID         int64
	BranchID   int64
	Name       string
	CourtType  string // e.g. "badminton", "futsal" - display/filtering only
	HourlyRate decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasValidRate returns true if the court carries a positive hourly rate
func (c *Court) HasValidRate() bool {
	return c.HourlyRate.IsPositive()
}
