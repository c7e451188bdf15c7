package suggest_periods

import (
	"context"

	suggestPeriods "github.com/avdnv/court-booking-service/internal/usecase/suggest_periods"
)

type SuggestPeriodsUseCase interface {
	Execute(ctx context.Context, req *suggestPeriods.Request) (*suggestPeriods.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
