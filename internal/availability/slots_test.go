package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/pkg/types"
)

func TestDaySlots_DefaultWindow(t *testing.T) {
	slots, err := DaySlots(domain.BookableDayStart, domain.BookableDayEnd, 30)
	require.NoError(t, err)

	// 06:00-22:00 с шагом 30 минут - ровно 32 слота
	require.Len(t, slots, 32)
	assert.Equal(t, types.TimeString("06:00"), slots[0])
	assert.Equal(t, types.TimeString("21:30"), slots[len(slots)-1])
}

func TestDaySlots_Deterministic(t *testing.T) {
	first, err := DaySlots("06:00", "22:00", 30)
	require.NoError(t, err)
	second, err := DaySlots("06:00", "22:00", 30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDaySlots_CustomWindow(t *testing.T) {
	slots, err := DaySlots("10:00", "12:00", 60)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, slots)
}

func TestDaySlots_LastSlotMustFitWindow(t *testing.T) {
	// 06:00-07:00 с шагом 45 минут: 06:45+45 вышло бы за окно
	slots, err := DaySlots("06:00", "07:00", 45)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"06:00"}, slots)
}

func TestDaySlots_InvalidInput(t *testing.T) {
	_, err := DaySlots("22:00", "06:00", 30)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = DaySlots("06:00", "06:00", 30)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = DaySlots("06:00", "22:00", 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = DaySlots("6am", "22:00", 30)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
