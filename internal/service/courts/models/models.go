package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/domain"
)

// Request модели

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	UserID     int64           `json:"userId"`
	BranchID   int64           `json:"branchId"`
	Name       string          `json:"name"`
	CourtType  string          `json:"courtType"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
}

// UpdateCourtRequest запрос на обновление корта
// Nil-поля не изменяются
type UpdateCourtRequest struct {
	UserID     int64            `json:"userId"`
	Name       *string          `json:"name,omitempty"`
	CourtType  *string          `json:"courtType,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourlyRate,omitempty"`
	IsActive   *bool            `json:"isActive,omitempty"`
}

// GetCourtsRequest запрос на получение кортов филиала
type GetCourtsRequest struct {
	BranchID        int64 `json:"branchId"`
	IncludeInactive bool  `json:"includeInactive,omitempty"`
}

// Response модели

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID         int64           `json:"id"`
	BranchID   int64           `json:"branchId"`
	Name       string          `json:"name"`
	CourtType  string          `json:"courtType"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// Методы конвертации

// ToDomainCourt конвертирует запрос создания в domain модель
func (r *CreateCourtRequest) ToDomainCourt() *domain.Court {
	return &domain.Court{
		BranchID:   r.BranchID,
		Name:       r.Name,
		CourtType:  r.CourtType,
		HourlyRate: r.HourlyRate,
		IsActive:   true,
	}
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}

	return &CourtResponse{
		ID:         c.ID,
		BranchID:   c.BranchID,
		Name:       c.Name,
		CourtType:  c.CourtType,
		HourlyRate: c.HourlyRate,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	if courts == nil {
		return &CourtListResponse{
			Courts: []CourtResponse{},
		}
	}

	resp := &CourtListResponse{
		Courts: make([]CourtResponse, len(courts)),
	}

	for i, court := range courts {
		if courtResp := FromDomainCourt(court); courtResp != nil {
			resp.Courts[i] = *courtResp
		}
	}

	return resp
}
