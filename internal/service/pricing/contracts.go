package pricing

import (
	"context"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/internal/integrations/venueservice"
)

// PricingRuleRepository интерфейс репозитория правил ценообразования
type PricingRuleRepository interface {
	ListByBranch(ctx context.Context, branchID int64) ([]*domain.PeakRule, error)
	ReplaceForBranch(ctx context.Context, branchID int64, rules []*domain.PeakRule) error
}

// VenueServiceClient интерфейс клиента для VenueService
type VenueServiceClient interface {
	GetBranch(ctx context.Context, branchID int64) (*venueservice.Branch, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
