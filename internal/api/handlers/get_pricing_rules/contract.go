package get_pricing_rules

import (
	"context"

	"github.com/avdnv/court-booking-service/internal/service/pricing/models"
)

type PricingService interface {
	GetRules(ctx context.Context, branchID int64) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
