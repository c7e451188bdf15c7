package quote_price

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnv/court-booking-service/internal/domain"
	courtRepo "github.com/avdnv/court-booking-service/internal/infra/storage/court"
)

type fakeCourtRepo struct {
	court *domain.Court
	err   error
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.court, nil
}

type fakeRuleRepo struct {
	rules []*domain.PeakRule
}

func (f *fakeRuleRepo) ListByBranch(_ context.Context, _ int64) ([]*domain.PeakRule, error) {
	return f.rules, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCourt() *domain.Court {
	return &domain.Court{
		ID:         1,
		BranchID:   10,
		Name:       "Корт 1",
		HourlyRate: decimal.NewFromInt(150000),
		IsActive:   true,
	}
}

func peakRules() []*domain.PeakRule {
	return []*domain.PeakRule{
		{BranchID: 10, StartHour: 18, EndHour: 21, Label: "вечерний пик", Multiplier: decimal.NewFromFloat(1.2), Position: 0},
	}
}

func TestQuotePrice_BasePrice(t *testing.T) {
	uc := NewUseCase(&fakeCourtRepo{court: testCourt()}, &fakeRuleRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartTime: "10:00", EndTime: "12:00"})
	require.NoError(t, err)

	assert.Equal(t, 120, resp.DurationMinutes)
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(300000)), "got %s", resp.TotalPrice)
	assert.True(t, resp.Multiplier.Equal(decimal.NewFromInt(1)))
	assert.Nil(t, resp.PeakLabel)
}

func TestQuotePrice_PeakMultiplier(t *testing.T) {
	uc := NewUseCase(&fakeCourtRepo{court: testCourt()}, &fakeRuleRepo{rules: peakRules()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartTime: "18:00", EndTime: "20:00"})
	require.NoError(t, err)

	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(360000)), "got %s", resp.TotalPrice)
	require.NotNil(t, resp.PeakLabel)
	assert.Equal(t, "вечерний пик", *resp.PeakLabel)
}

func TestQuotePrice_StartHourRulesWholeInterval(t *testing.T) {
	uc := NewUseCase(&fakeCourtRepo{court: testCourt()}, &fakeRuleRepo{rules: peakRules()}, nopLogger{})

	// Начало в 17:00 вне пика - пиковое окно внутри интервала не влияет
	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartTime: "17:00", EndTime: "19:00"})
	require.NoError(t, err)

	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(300000)), "got %s", resp.TotalPrice)
	assert.Nil(t, resp.PeakLabel)
}

func TestQuotePrice_HalfUpRounding(t *testing.T) {
	court := testCourt()
	court.HourlyRate = decimal.NewFromInt(333)

	uc := NewUseCase(&fakeCourtRepo{court: court}, &fakeRuleRepo{}, nopLogger{})

	// 333 * 0.5 часа = 166.5 → 167
	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartTime: "10:00", EndTime: "10:30"})
	require.NoError(t, err)
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(167)), "got %s", resp.TotalPrice)
}

func TestQuotePrice_Errors(t *testing.T) {
	uc := NewUseCase(&fakeCourtRepo{err: courtRepo.ErrCourtNotFound}, &fakeRuleRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartTime: "10:00", EndTime: "12:00"})
	assert.ErrorIs(t, err, ErrCourtNotFound)

	uc = NewUseCase(&fakeCourtRepo{court: testCourt()}, &fakeRuleRepo{}, nopLogger{})

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, StartTime: "12:00", EndTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, StartTime: "25:00", EndTime: "26:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
