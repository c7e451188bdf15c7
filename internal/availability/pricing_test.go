package availability

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnv/court-booking-service/internal/domain"
)

func makeCourt(rate int64) *domain.Court {
	return &domain.Court{
		ID:         1,
		BranchID:   1,
		Name:       "Корт 1",
		CourtType:  "badminton",
		HourlyRate: decimal.NewFromInt(rate),
		IsActive:   true,
	}
}

func makeRule(startHour, endHour int, multiplier string) domain.PeakRule {
	return domain.PeakRule{
		BranchID:   1,
		StartHour:  startHour,
		EndHour:    endHour,
		Label:      "peak",
		Multiplier: decimal.RequireFromString(multiplier),
	}
}

func TestPriceInterval_BaseRate(t *testing.T) {
	price, err := PriceInterval(makeCourt(150000), "08:00", "10:00", nil)
	require.NoError(t, err)
	assert.Equal(t, "300000", price.String())
}

func TestPriceInterval_FractionalHours(t *testing.T) {
	price, err := PriceInterval(makeCourt(150000), "08:00", "08:30", nil)
	require.NoError(t, err)
	assert.Equal(t, "75000", price.String())
}

func TestPriceInterval_PeakMultiplier(t *testing.T) {
	rules := []domain.PeakRule{makeRule(17, 21, "1.2")}

	price, err := PriceInterval(makeCourt(150000), "17:00", "19:00", rules)
	require.NoError(t, err)
	assert.Equal(t, "360000", price.String())
}

func TestPriceInterval_OnlyStartHourSelectsRule(t *testing.T) {
	rules := []domain.PeakRule{makeRule(17, 21, "1.2")}

	// Интервал начинается вне пика и захватывает пиковый час -
	// оплачивается целиком по стартовому тарифу
	price, err := PriceInterval(makeCourt(150000), "16:00", "18:00", rules)
	require.NoError(t, err)
	assert.Equal(t, "300000", price.String())

	// Начало ровно на границе конца правила [17, 21) - правило не действует
	price, err = PriceInterval(makeCourt(150000), "21:00", "22:00", rules)
	require.NoError(t, err)
	assert.Equal(t, "150000", price.String())
}

func TestPriceInterval_FirstMatchingRuleWins(t *testing.T) {
	rules := []domain.PeakRule{
		makeRule(17, 21, "1.2"),
		makeRule(16, 22, "2.0"),
	}

	price, err := PriceInterval(makeCourt(100000), "18:00", "19:00", rules)
	require.NoError(t, err)
	assert.Equal(t, "120000", price.String())
}

func TestPriceInterval_RoundsHalfUp(t *testing.T) {
	// 333 * 0.5h = 166.5 → 167
	price, err := PriceInterval(makeCourt(333), "08:00", "08:30", nil)
	require.NoError(t, err)
	assert.Equal(t, "167", price.String())
}

func TestPriceInterval_UnknownCourt(t *testing.T) {
	_, err := PriceInterval(nil, "08:00", "10:00", nil)
	assert.ErrorIs(t, err, ErrUnknownCourt)

	_, err = PriceInterval(&domain.Court{ID: 7}, "08:00", "10:00", nil)
	assert.ErrorIs(t, err, ErrUnknownCourt)
}

func TestPriceInterval_InvalidInterval(t *testing.T) {
	_, err := PriceInterval(makeCourt(150000), "10:00", "08:00", nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = PriceInterval(makeCourt(150000), "10:00", "10:00", nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
