package update_court

import (
	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/service/courts/models"
)

// UpdateCourtRequest HTTP request model, nil-поля не изменяются
type UpdateCourtRequest struct {
	Name       *string          `json:"name,omitempty"`
	CourtType  *string          `json:"courtType,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourlyRate,omitempty"`
	IsActive   *bool            `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCourtRequest) ToServiceRequest(userID int64) *models.UpdateCourtRequest {
	return &models.UpdateCourtRequest{
		UserID:     userID,
		Name:       r.Name,
		CourtType:  r.CourtType,
		HourlyRate: r.HourlyRate,
		IsActive:   r.IsActive,
	}
}
