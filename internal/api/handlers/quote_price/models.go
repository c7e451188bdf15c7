package quote_price

import (
	"github.com/shopspring/decimal"

	quotePrice "github.com/avdnv/court-booking-service/internal/usecase/quote_price"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	CourtID         int64           `json:"courtId"`
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	DurationMinutes int             `json:"durationMinutes"`
	HourlyRate      decimal.Decimal `json:"hourlyRate"`
	Multiplier      decimal.Decimal `json:"multiplier"`
	PeakLabel       *string         `json:"peakLabel,omitempty"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		CourtID:         resp.CourtID,
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		HourlyRate:      resp.HourlyRate,
		Multiplier:      resp.Multiplier,
		PeakLabel:       resp.PeakLabel,
		TotalPrice:      resp.TotalPrice,
	}
}
