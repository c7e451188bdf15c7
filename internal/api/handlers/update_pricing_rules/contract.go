package update_pricing_rules

import (
	"context"

	"github.com/avdnv/court-booking-service/internal/service/pricing/models"
)

type PricingService interface {
	ReplaceRules(ctx context.Context, req *models.ReplaceRulesRequest) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
