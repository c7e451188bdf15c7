package availability

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/pkg/ptr"
	"github.com/avdnv/court-booking-service/pkg/types"
)

var (
	testDate  = time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	otherDate = time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local)
	// "now" на другой день, чтобы фильтр прошедших слотов не срабатывал
	testNow = time.Date(2024, 12, 30, 10, 0, 0, 0, time.Local)
)

func makeBooking(id, courtID int64, date time.Time, start, end types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		CustomerID:  100,
		CourtID:     courtID,
		BranchID:    1,
		BookingDate: date,
		StartTime:   start,
		EndTime:     end,
		Status:      status,
		TotalPrice:  decimal.NewFromInt(300000),
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     types.TimeString
		want                           bool
	}{
		{"partial overlap at start", "09:00", "11:00", "08:00", "10:00", true},
		{"partial overlap at end", "08:00", "10:00", "09:00", "11:00", true},
		{"a contains b", "08:00", "12:00", "09:00", "10:00", true},
		{"b contains a", "09:00", "10:00", "08:00", "12:00", true},
		{"identical intervals", "09:00", "10:00", "09:00", "10:00", true},
		{"adjacent, a before b", "08:00", "10:00", "10:00", "12:00", false},
		{"adjacent, b before a", "10:00", "12:00", "08:00", "10:00", false},
		{"disjoint", "06:00", "07:00", "20:00", "21:00", false},
		{"zero-length a inside b", "09:30", "09:30", "09:00", "10:00", false},
		{"zero-length both", "09:00", "09:00", "09:00", "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Проверка симметрии
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestHasConflict_EmptyBookings(t *testing.T) {
	conflict, err := HasConflict(1, testDate, "09:00", "11:00", nil, nil)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_OverlapAndAdjacency(t *testing.T) {
	bookings := []*domain.Booking{
		makeBooking(1, 1, testDate, "08:00", "10:00", domain.StatusConfirmed),
	}

	// Пересечение 09:00-10:00
	conflict, err := HasConflict(1, testDate, "09:00", "11:00", bookings, nil)
	require.NoError(t, err)
	assert.True(t, conflict)

	// Граничащий интервал - не конфликт
	conflict, err = HasConflict(1, testDate, "10:00", "12:00", bookings, nil)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_IgnoresZeroLengthBookings(t *testing.T) {
	// Бронирование с start == end не занимает времени и не может
	// конфликтовать, даже если его момент лежит строго внутри интервала
	bookings := []*domain.Booking{
		makeBooking(1, 1, testDate, "09:30", "09:30", domain.StatusConfirmed),
	}

	conflict, err := HasConflict(1, testDate, "09:00", "10:00", bookings, nil)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_IgnoresCancelledBookings(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledByAdmin,
		domain.StatusNoShow,
	} {
		bookings := []*domain.Booking{
			makeBooking(1, 1, testDate, "08:00", "10:00", status),
		}

		conflict, err := HasConflict(1, testDate, "09:00", "11:00", bookings, nil)
		require.NoError(t, err)
		assert.False(t, conflict, "status %s must not conflict", status)
	}
}

func TestHasConflict_IgnoresOtherCourtAndDate(t *testing.T) {
	bookings := []*domain.Booking{
		makeBooking(1, 2, testDate, "09:00", "11:00", domain.StatusConfirmed),
		makeBooking(2, 1, otherDate, "09:00", "11:00", domain.StatusConfirmed),
	}

	conflict, err := HasConflict(1, testDate, "09:00", "11:00", bookings, nil)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_ExcludesBookingByID(t *testing.T) {
	bookings := []*domain.Booking{
		makeBooking(42, 1, testDate, "09:00", "11:00", domain.StatusConfirmed),
	}

	// Идентичный интервал конфликтует сам с собой без исключения
	conflict, err := HasConflict(1, testDate, "09:00", "11:00", bookings, nil)
	require.NoError(t, err)
	assert.True(t, conflict)

	// С исключением собственного ID - конфликта нет
	conflict, err = HasConflict(1, testDate, "09:00", "11:00", bookings, ptr.Ptr(int64(42)))
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_InvalidInterval(t *testing.T) {
	_, err := HasConflict(1, testDate, "11:00", "09:00", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = HasConflict(1, testDate, "09:00", "09:00", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestIsSlotAvailable(t *testing.T) {
	bookings := []*domain.Booking{
		makeBooking(1, 1, testDate, "08:00", "10:00", domain.StatusConfirmed),
	}

	free, err := IsSlotAvailable(1, testDate, "10:00", 30, bookings, testNow)
	require.NoError(t, err)
	assert.True(t, free)

	occupied, err := IsSlotAvailable(1, testDate, "09:30", 30, bookings, testNow)
	require.NoError(t, err)
	assert.False(t, occupied)
}

func TestIsSlotAvailable_PastSlotToday(t *testing.T) {
	// Сейчас 12:15, дата запроса - сегодня
	now := time.Date(2025, 1, 1, 12, 15, 0, 0, time.Local)

	past, err := IsSlotAvailable(1, testDate, "12:00", 30, nil, now)
	require.NoError(t, err)
	assert.False(t, past, "slot before now on today's date must be unavailable")

	future, err := IsSlotAvailable(1, testDate, "12:30", 30, nil, now)
	require.NoError(t, err)
	assert.True(t, future)

	// На другую дату фильтр по текущему времени не действует
	tomorrow, err := IsSlotAvailable(1, otherDate, "06:00", 30, nil, now)
	require.NoError(t, err)
	assert.True(t, tomorrow)
}
