package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/internal/integrations/venueservice"
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
		CourtType:  "badminton",
		HourlyRate: decimal.NewFromInt(150000),
		IsActive:   true,
	}
}

func newTestUseCase(bookings []*domain.Booking, rules []*domain.PeakRule, branch *venueservice.Branch) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{rules: rules},
		&fakeVenueClient{branch: branch},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestGetAvailableSlots_FullDay(t *testing.T) {
	uc := newTestUseCase(nil, nil, &venueservice.Branch{ID: 10})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	// Окно 06:00-22:00 с шагом 30 минут: ровно 32 слота
	require.Len(t, resp.Slots, 32)
	assert.Equal(t, "06:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "21:30", resp.Slots[31].StartTime.String())

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s should be free", slot.StartTime)
		// 150000/час, слот 30 минут
		assert.True(t, slot.Price.Equal(decimal.NewFromInt(75000)), "slot %s price %s", slot.StartTime, slot.Price)
	}
}

func TestGetAvailableSlots_BookedSlotsFlagged(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID: 5, CustomerID: 200, CourtID: 1, BranchID: 10,
			BookingDate: testDate,
			StartTime:   "10:00", EndTime: "11:00",
			Status: domain.StatusConfirmed,
		},
	}

	uc := newTestUseCase(bookings, nil, &venueservice.Branch{ID: 10})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	bySlot := make(map[string]domain.AvailableSlot, len(resp.Slots))
	for _, slot := range resp.Slots {
		bySlot[slot.StartTime.String()] = slot
	}

	assert.False(t, bySlot["10:00"].Available)
	assert.False(t, bySlot["10:30"].Available)
	// Граничащие слоты свободны
	assert.True(t, bySlot["09:30"].Available)
	assert.True(t, bySlot["11:00"].Available)
}

func TestGetAvailableSlots_PeakSlotsPriced(t *testing.T) {
	rules := []*domain.PeakRule{
		{BranchID: 10, StartHour: 18, EndHour: 21, Label: "вечерний пик", Multiplier: decimal.NewFromFloat(1.2), Position: 0},
	}

	uc := newTestUseCase(nil, rules, &venueservice.Branch{ID: 10})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	bySlot := make(map[string]domain.AvailableSlot, len(resp.Slots))
	for _, slot := range resp.Slots {
		bySlot[slot.StartTime.String()] = slot
	}

	// 75000 * 1.2 = 90000 в пиковом окне [18, 21)
	assert.True(t, bySlot["18:00"].Price.Equal(decimal.NewFromInt(90000)))
	assert.True(t, bySlot["20:30"].Price.Equal(decimal.NewFromInt(90000)))
	// Вне пика базовая цена
	assert.True(t, bySlot["17:30"].Price.Equal(decimal.NewFromInt(75000)))
	assert.True(t, bySlot["21:00"].Price.Equal(decimal.NewFromInt(75000)))
}

func TestGetAvailableSlots_PastSlotsUnavailableToday(t *testing.T) {
	uc := newTestUseCase(nil, nil, &venueservice.Branch{ID: 10})

	// Запрашиваем сегодняшний день, now = 10:00
	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testNow})
	require.NoError(t, err)

	bySlot := make(map[string]domain.AvailableSlot, len(resp.Slots))
	for _, slot := range resp.Slots {
		bySlot[slot.StartTime.String()] = slot
	}

	assert.False(t, bySlot["09:30"].Available)
	assert.True(t, bySlot["10:00"].Available)
}

func TestGetAvailableSlots_BranchClosed(t *testing.T) {
	branch := &venueservice.Branch{
		ID: 10,
		Schedule: map[string]venueservice.DaySchedule{
			weekdayKey(testDate): {IsOpen: false},
		},
	}

	uc := newTestUseCase(nil, nil, branch)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGetAvailableSlots_PastDate(t *testing.T) {
	uc := newTestUseCase(nil, nil, &venueservice.Branch{ID: 10})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testNow.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
