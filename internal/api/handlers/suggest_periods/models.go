package suggest_periods

import (
	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/domain"
	suggestPeriods "github.com/avdnv/court-booking-service/internal/usecase/suggest_periods"
)

// PeriodsResponse HTTP response model
type PeriodsResponse struct {
	CourtID int64    `json:"courtId"`
	Date    string   `json:"date"`
	Periods []Period `json:"periods"`
}

// Period HTTP model предложенного периода
type Period struct {
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestPeriods.Response) *PeriodsResponse {
	periods := make([]Period, len(resp.Periods))
	for i, p := range resp.Periods {
		periods[i] = Period{
			StartTime:       p.StartTime.String(),
			EndTime:         p.EndTime.String(),
			DurationMinutes: p.DurationMinutes,
			Price:           p.Price,
		}
	}

	return &PeriodsResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Periods: periods,
	}
}
