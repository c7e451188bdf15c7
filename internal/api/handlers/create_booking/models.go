package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/domain"
	createBooking "github.com/avdnv/court-booking-service/internal/usecase/create_booking"
	"github.com/avdnv/court-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID     int64   `json:"courtId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "12:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customerId"`
	CourtID         int64           `json:"courtId"`
	BranchID        int64           `json:"branchId"`
	BookingDate     string          `json:"bookingDate"`
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	DurationMinutes int             `json:"durationMinutes"`
	Status          string          `json:"status"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CourtName       string          `json:"courtName"`
	CourtType       string          `json:"courtType"`
	CustomerName    *string         `json:"customerName,omitempty"`
	CustomerPhone   *string         `json:"customerPhone,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время начала и конца
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: customerID,
		CourtID:    r.CourtID,
		Date:       bookingDate,
		StartTime:  startTime,
		EndTime:    endTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		CourtID:         resp.CourtID,
		BranchID:        resp.BranchID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TotalPrice:      resp.TotalPrice,
		CourtName:       resp.CourtName,
		CourtType:       resp.CourtType,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
