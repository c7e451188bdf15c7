package get_available_slots

import (
	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/domain"
	getAvailableSlots "github.com/avdnv/court-booking-service/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	CourtID  int64  `json:"courtId"`
	BranchID int64  `json:"branchId"`
	Date     string `json:"date"`
	Slots    []Slot `json:"slots"`
}

// Slot HTTP model временного слота
type Slot struct {
	StartTime       string          `json:"startTime"`
	DurationMinutes int             `json:"durationMinutes"`
	Available       bool            `json:"available"`
	Price           decimal.Decimal `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Available:       s.Available,
			Price:           s.Price,
		}
	}

	return &SlotsResponse{
		CourtID:  resp.CourtID,
		BranchID: resp.BranchID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
