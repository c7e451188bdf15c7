package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnv/court-booking-service/internal/domain"
	courtRepo "github.com/avdnv/court-booking-service/internal/infra/storage/court"
	"github.com/avdnv/court-booking-service/internal/integrations/customerservice"
	"github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	"github.com/avdnv/court-booking-service/pkg/types"
)

var (
	testNow  = time.Date(2025, 1, 1, 10, 0, 0, 0, time.Local)
	testDate = time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local)
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	booking.ID = f.nextID
	booking.CreatedAt = testNow
	booking.UpdatedAt = testNow
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByCourtAndDate(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

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

type fakeVenueClient struct {
	branch *venueservice.Branch
	err    error
}

func (f *fakeVenueClient) GetBranch(_ context.Context, _ int64) (*venueservice.Branch, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.branch, nil
}

type fakeCustomerClient struct {
	customer *customerservice.Customer
	err      error
}

func (f *fakeCustomerClient) GetCustomerWithGracefulDegradation(_ context.Context, _ int64) (*customerservice.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customer, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

// Конструкторы тестовых данных

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

func testBranch() *venueservice.Branch {
	return &venueservice.Branch{
		ID:   10,
		Name: "Центральный",
	}
}

func testCustomer() *customerservice.Customer {
	return &customerservice.Customer{
		ID:       100,
		FullName: "Иван Петров",
		Phone:    "+79001234567",
	}
}

func activeBooking(id int64, start, end types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		CustomerID:  200,
		CourtID:     1,
		BranchID:    10,
		BookingDate: testDate,
		StartTime:   start,
		EndTime:     end,
		Status:      domain.StatusConfirmed,
	}
}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	courtRepo *fakeCourtRepo,
	ruleRepo *fakeRuleRepo,
	venue *fakeVenueClient,
	customer *fakeCustomerClient,
) *UseCase {
	uc := NewUseCase(bookingRepo, courtRepo, ruleRepo, venue, customer, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerID: 100,
		CourtID:    1,
		Date:       testDate,
		StartTime:  "10:00",
		EndTime:    "12:00",
	}
}

// Тесты

func TestCreateBooking_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(
		repo,
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 120, resp.DurationMinutes)
	// 150000/час * 2 часа, без пиковых правил
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(300000)), "got %s", resp.TotalPrice)

	// Денормализация
	assert.Equal(t, "Корт 1", resp.CourtName)
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "Иван Петров", *resp.CustomerName)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestCreateBooking_PeakPricing(t *testing.T) {
	rules := []*domain.PeakRule{
		{BranchID: 10, StartHour: 18, EndHour: 21, Label: "вечерний пик", Multiplier: decimal.NewFromFloat(1.2), Position: 0},
	}
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{rules: rules},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	req := validRequest()
	req.StartTime = "18:00"
	req.EndTime = "20:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 150000 * 2 * 1.2 = 360000
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(360000)), "got %s", resp.TotalPrice)
}

func TestCreateBooking_Conflict(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{activeBooking(5, "10:00", "12:00")},
	}
	uc := newTestUseCase(
		repo,
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	req := validRequest()
	req.StartTime = "11:00"
	req.EndTime = "13:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.created)
}

func TestCreateBooking_AdjacentIntervalsDoNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{activeBooking(5, "10:00", "12:00")},
	}
	uc := newTestUseCase(
		repo,
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	req := validRequest()
	req.StartTime = "12:00"
	req.EndTime = "13:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "12:00", resp.StartTime.String())
}

func TestCreateBooking_CancelledBookingDoesNotBlock(t *testing.T) {
	cancelled := activeBooking(5, "10:00", "12:00")
	cancelled.Status = domain.StatusCancelledByCustomer

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{cancelled}},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestCreateBooking_UnalignedTime(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	req := validRequest()
	req.StartTime = "10:15"
	req.EndTime = "11:15"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBooking_StartNotBeforeEnd(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	req := validRequest()
	req.StartTime = "12:00"
	req.EndTime = "12:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBooking_OutsideWindow(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	// Окно по умолчанию 06:00-22:00
	req := validRequest()
	req.StartTime = "05:00"
	req.EndTime = "06:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBookableWindow)

	req.StartTime = "21:30"
	req.EndTime = "22:30"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBookableWindow)
}

func TestCreateBooking_PastDateAndTime(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	// Вчерашняя дата
	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Сегодня, но время уже прошло (now = 10:00)
	req = validRequest()
	req.Date = testNow
	req.StartTime = "09:00"
	req.EndTime = "10:00"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeInPast)
}

func TestCreateBooking_CourtNotFoundAndInactive(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCourtRepo{err: courtRepo.ErrCourtNotFound},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)

	inactive := testCourt()
	inactive.IsActive = false
	uc = newTestUseCase(
		&fakeBookingRepo{},
		&fakeCourtRepo{court: inactive},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{customer: testCustomer()},
	)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtInactive)
}

func TestCreateBooking_BranchClosed(t *testing.T) {
	branch := testBranch()
	branch.Schedule = map[string]venueservice.DaySchedule{
		weekdayKey(testDate): {IsOpen: false},
	}

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: branch},
		&fakeCustomerClient{customer: testCustomer()},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBranchClosed)
}

func TestCreateBooking_BranchScheduleNarrowsWindow(t *testing.T) {
	branch := testBranch()
	branch.Schedule = map[string]venueservice.DaySchedule{
		weekdayKey(testDate): {IsOpen: true, OpensAt: "09:00", ClosesAt: "18:00"},
	}

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: branch},
		&fakeCustomerClient{customer: testCustomer()},
	)

	// 08:00 внутри окна по умолчанию, но раньше открытия филиала
	req := validRequest()
	req.StartTime = "08:00"
	req.EndTime = "09:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBookableWindow)
}

func TestCreateBooking_CustomerServiceDegraded(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(
		repo,
		&fakeCourtRepo{court: testCourt()},
		&fakeRuleRepo{},
		&fakeVenueClient{branch: testBranch()},
		&fakeCustomerClient{err: customerservice.ErrServiceDegraded},
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Бронирование создано без данных клиента
	assert.Nil(t, resp.CustomerName)
	assert.Nil(t, resp.CustomerPhone)
	require.NotNil(t, repo.created)
}
