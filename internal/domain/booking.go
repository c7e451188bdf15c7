package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByAdmin    BookingStatus = "cancelled_by_admin"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a court reservation for a half-open time interval
// [StartTime, EndTime) on a given date
type Booking struct {
	ID         int64
	CustomerID int64
	CourtID    int64
	BranchID   int64

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	TotalPrice  decimal.Decimal

	// Denormalized data for history
	CourtName     string
	CourtType     string
	CustomerName  *string
	CustomerPhone *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the booked interval length in minutes
func (b *Booking) DurationMinutes() int {
	return types.MinutesBetween(b.StartTime, b.EndTime)
}

// IsActive returns true if the booking occupies its interval.
// Only active bookings participate in conflict checks.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByCustomer &&
		b.Status != StatusCancelledByAdmin &&
		b.Status != StatusNoShow
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledByAdmin
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the booking status can still change
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CourtBookingsFilter фильтр для получения бронирований корта
type CourtBookingsFilter struct {
	CourtID         int64
	Date            *time.Time // Конкретная дата (опционально)
	IncludeInactive bool       // Включать ли отменённые и no-show
}

// BranchBookingsFilter фильтр для получения бронирований филиала
type BranchBookingsFilter struct {
	BranchID        int64
	CourtID         *int64         // Фильтр по корту (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool
}
