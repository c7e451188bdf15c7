package get_courts

import (
	"context"

	"github.com/avdnv/court-booking-service/internal/service/courts/models"
)

type CourtService interface {
	GetCourts(ctx context.Context, req *models.GetCourtsRequest) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
