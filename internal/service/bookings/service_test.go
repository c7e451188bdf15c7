package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnv/court-booking-service/internal/domain"
	bookingRepo "github.com/avdnv/court-booking-service/internal/infra/storage/booking"
	"github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	"github.com/avdnv/court-booking-service/internal/service/bookings/models"
)

const (
	testCustomerID = int64(100)
	testManagerID  = int64(200)
	testStrangerID = int64(300)
	testBranchID   = int64(10)
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string

	updatedID     int64
	updatedStatus domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByBranchWithFilter(_ context.Context, filter domain.BranchBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.BranchID == filter.BranchID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type fakeVenueClient struct {
	branches map[int64]*venueservice.Branch
}

func (f *fakeVenueClient) GetBranch(_ context.Context, branchID int64) (*venueservice.Branch, error) {
	b, ok := f.branches[branchID]
	if !ok {
		return nil, venueservice.ErrBranchNotFound
	}
	return b, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		CustomerID:  testCustomerID,
		CourtID:     1,
		BranchID:    testBranchID,
		BookingDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "12:00",
		Status:      status,
		TotalPrice:  decimal.NewFromInt(300000),
		CourtName:   "Корт 1",
		CourtType:   "tennis",
	}
}

func newTestService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}

	venue := &fakeVenueClient{branches: map[int64]*venueservice.Branch{
		testBranchID: {
			ID:         testBranchID,
			Name:       "Центральный",
			ManagerIDs: []int64{testManagerID},
		},
	}}

	return NewService(repo, venue, nopLogger{}), repo
}

func TestService_GetByID_Access(t *testing.T) {
	svc, _ := newTestService(testBooking(1, domain.StatusConfirmed))

	// Владелец видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 1, testCustomerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Менеджер филиала тоже видит
	resp, err = svc.GetByID(context.Background(), 1, testManagerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Посторонний пользователь - нет
	_, err = svc.GetByID(context.Background(), 1, testStrangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 99, testCustomerID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel_ByOwner(t *testing.T) {
	svc, repo := newTestService(testBooking(1, domain.StatusConfirmed))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             testCustomerID,
		CancellationReason: "передумал",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByCustomer, repo.cancelledStatus)
	assert.Equal(t, "передумал", repo.cancelledReason)
}

func TestService_Cancel_ByManager(t *testing.T) {
	svc, repo := newTestService(testBooking(1, domain.StatusPending))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             testManagerID,
		CancellationReason: "корт на ремонте",
	})
	require.NoError(t, err)

	// Отмена не владельцем фиксируется как административная
	assert.Equal(t, domain.StatusCancelledByAdmin, repo.cancelledStatus)
}

func TestService_Cancel_ByStranger(t *testing.T) {
	svc, repo := newTestService(testBooking(1, domain.StatusConfirmed))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID: testStrangerID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestService_Cancel_CompletedBooking(t *testing.T) {
	svc, _ := newTestService(testBooking(1, domain.StatusCompleted))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID: testCustomerID,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_UpdateStatus_ManagerOnly(t *testing.T) {
	svc, repo := newTestService(testBooking(1, domain.StatusConfirmed))

	// Менеджер переводит бронирование в completed
	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: testManagerID,
		Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)

	// Владелец без прав менеджера - отказ
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: testCustomerID,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newTestService(testBooking(1, domain.StatusConfirmed))

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: testManagerID,
		Status: "broken",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetBranchBookings_Access(t *testing.T) {
	svc, _ := newTestService(
		testBooking(1, domain.StatusConfirmed),
		testBooking(2, domain.StatusPending),
	)

	// Менеджеру доступен список филиала
	resp, err := svc.GetBranchBookings(context.Background(), &models.GetBranchBookingsRequest{
		UserID:   testManagerID,
		BranchID: testBranchID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	// Обычному клиенту - нет
	_, err = svc.GetBranchBookings(context.Background(), &models.GetBranchBookingsRequest{
		UserID:   testCustomerID,
		BranchID: testBranchID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetCustomerBookings_FiltersByStatus(t *testing.T) {
	confirmed := testBooking(1, domain.StatusConfirmed)
	cancelled := testBooking(2, domain.StatusCancelledByCustomer)
	svc, _ := newTestService(confirmed, cancelled)

	status := "confirmed"
	resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
		CustomerID: testCustomerID,
		Status:     &status,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}
