package suggest_periods

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	"github.com/avdnv/court-booking-service/pkg/types"
)

var (
	testNow  = time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)
	testDate = time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local)
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByCourtAndDate(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCourtRepo struct {
	court *domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, nil
}

type fakeRuleRepo struct {
	rules []*domain.PeakRule
}

func (f *fakeRuleRepo) ListByBranch(_ context.Context, _ int64) ([]*domain.PeakRule, error) {
	return f.rules, nil
}

type fakeVenueClient struct {
	branch *venueservice.Branch
}

func (f *fakeVenueClient) GetBranch(_ context.Context, _ int64) (*venueservice.Branch, error) {
	return f.branch, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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

func booking(start, end types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID: 5, CustomerID: 200, CourtID: 1, BranchID: 10,
		BookingDate: testDate,
		StartTime:   start, EndTime: end,
		Status: domain.StatusConfirmed,
	}
}

func newTestUseCase(bookings []*domain.Booking, rules []*domain.PeakRule) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{rules: rules},
		&fakeVenueClient{branch: &venueservice.Branch{ID: 10}},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestSuggestPeriods_EmptyDay(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	// Пустой день - один отрезок 06:00-22:00, предложения 1 и 2 часа от начала
	require.Len(t, resp.Periods, 2)
	assert.Equal(t, "06:00", resp.Periods[0].StartTime.String())
	assert.Equal(t, "07:00", resp.Periods[0].EndTime.String())
	assert.Equal(t, 60, resp.Periods[0].DurationMinutes)
	assert.True(t, resp.Periods[0].Price.Equal(decimal.NewFromInt(150000)))

	assert.Equal(t, "06:00", resp.Periods[1].StartTime.String())
	assert.Equal(t, "08:00", resp.Periods[1].EndTime.String())
	assert.Equal(t, 120, resp.Periods[1].DurationMinutes)
	assert.True(t, resp.Periods[1].Price.Equal(decimal.NewFromInt(300000)))
}

func TestSuggestPeriods_SplitByBooking(t *testing.T) {
	bookings := []*domain.Booking{
		booking("08:00", "20:00"),
	}

	uc := newTestUseCase(bookings, nil)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	// Свободны 06:00-08:00 и 20:00-22:00: по два предложения на каждый отрезок
	require.Len(t, resp.Periods, 4)
	assert.Equal(t, "06:00", resp.Periods[0].StartTime.String())
	assert.Equal(t, "06:00", resp.Periods[1].StartTime.String())
	assert.Equal(t, "20:00", resp.Periods[2].StartTime.String())
	assert.Equal(t, "20:00", resp.Periods[3].StartTime.String())
}

func TestSuggestPeriods_PeakStartExcluded(t *testing.T) {
	rules := []*domain.PeakRule{
		{BranchID: 10, StartHour: 6, EndHour: 22, Label: "весь день пик", Multiplier: decimal.NewFromFloat(1.5), Position: 0},
	}

	uc := newTestUseCase(nil, rules)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	// Все отрезки начинаются в пиковые часы - предложений нет
	assert.Empty(t, resp.Periods)
}

func TestSuggestPeriods_MaxSuggestionsTruncates(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate, MaxSuggestions: 1})
	require.NoError(t, err)

	require.Len(t, resp.Periods, 1)
	assert.Equal(t, 60, resp.Periods[0].DurationMinutes)
}

func TestSuggestPeriods_ShortRunSkipped(t *testing.T) {
	// Свободно только 06:00-06:30: короче минимальной длительности
	bookings := []*domain.Booking{
		booking("06:30", "22:00"),
	}

	uc := newTestUseCase(bookings, nil)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Periods)
}
