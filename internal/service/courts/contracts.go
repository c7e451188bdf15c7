package courts

import (
	"context"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/internal/integrations/venueservice"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	ListByBranch(ctx context.Context, branchID int64, includeInactive bool) ([]*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
	Delete(ctx context.Context, id int64) error
}

// VenueServiceClient интерфейс клиента для VenueService
type VenueServiceClient interface {
	GetBranch(ctx context.Context, branchID int64) (*venueservice.Branch, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
