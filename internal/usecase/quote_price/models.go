package quote_price

import (
	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/pkg/types"
)

// Request модель запроса на расчет цены интервала
type Request struct {
	UserID    int64            // ID пользователя (для логирования, не влияет на результат)
	CourtID   int64            // ID корта
	StartTime types.TimeString // Время начала интервала
	EndTime   types.TimeString // Время конца интервала
}

// Response модель ответа с расчетом цены
type Response struct {
	CourtID         int64            // ID корта
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца
	DurationMinutes int              // Длительность в минутах
	HourlyRate      decimal.Decimal  // Базовый часовой тариф корта
	Multiplier      decimal.Decimal  // Примененный множитель
	PeakLabel       *string          // Название примененного пикового правила, nil вне пика
	TotalPrice      decimal.Decimal  // Итоговая цена, округленная до целой единицы
}
