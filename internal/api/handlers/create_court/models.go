package create_court

import (
	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/service/courts/models"
)

// CreateCourtRequest HTTP request model
type CreateCourtRequest struct {
	Name       string          `json:"name"`
	CourtType  string          `json:"courtType"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateCourtRequest) ToServiceRequest(branchID, userID int64) *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		UserID:     userID,
		BranchID:   branchID,
		Name:       r.Name,
		CourtType:  r.CourtType,
		HourlyRate: r.HourlyRate,
	}
}
