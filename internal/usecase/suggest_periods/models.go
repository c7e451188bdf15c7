package suggest_periods

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/pkg/types"
)

// Request модель запроса на подбор свободных периодов
type Request struct {
	UserID             int64     // ID пользователя (для логирования, не влияет на результат)
	CourtID            int64     // ID корта
	Date               time.Time // Дата для подбора (без времени)
	MinDurationMinutes int       // Минимальная длина свободного отрезка; 0 - значение по умолчанию
	MaxSuggestions     int       // Максимум предложений; 0 - значение по умолчанию
}

// Response модель ответа со списком предложений
type Response struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата, на которую подбирались периоды
	Periods []Period  // Предложения в хронологическом порядке
}

// Period модель предложенного периода
type Period struct {
	StartTime       types.TimeString // Время начала периода
	EndTime         types.TimeString // Время конца периода
	DurationMinutes int              // Длительность в минутах
	Price           decimal.Decimal  // Цена периода с учетом пиковых правил
}
