package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"", "9:3", "25:00", "10:60", "ten"} {
		_, err := NewTimeStringFromString(invalid)
		assert.Error(t, err, "value %q must not parse", invalid)
	}
}

func TestTimeString_Ordering(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.True(t, a.Equal(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:45")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	got, err = ts.AddMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, ts, got)

	// Переход через полночь - ошибка
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_HourAndMinutes(t *testing.T) {
	ts := TimeString("17:45")
	assert.Equal(t, 17, ts.Hour())
	assert.Equal(t, 17*60+45, ts.MinutesOfDay())

	assert.Equal(t, 90, MinutesBetween("09:00", "10:30"))
	assert.Equal(t, -30, MinutesBetween("10:30", "10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan("09:15:00"))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan([]byte("08:00:00")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_JSON(t *testing.T) {
	data, err := TimeString("10:00").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"10:00"`, string(data))

	var ts TimeString
	require.NoError(t, ts.UnmarshalJSON([]byte(`"21:30"`)))
	assert.Equal(t, TimeString("21:30"), ts)

	assert.Error(t, ts.UnmarshalJSON([]byte(`"25:00"`)))
}
