package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64            // ID клиента
	CourtID    int64            // ID корта
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала интервала (например, "10:00")
	EndTime    types.TimeString // Время конца интервала (например, "12:00")
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	CustomerID      int64            // ID клиента
	CourtID         int64            // ID корта
	BranchID        int64            // ID филиала
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время конца
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования
	TotalPrice      decimal.Decimal  // Итоговая цена с учетом пиковых правил

	// Денормализованные данные
	CourtName     string  // Название корта
	CourtType     string  // Тип корта
	CustomerName  *string // Имя клиента (nil при недоступности CustomerService)
	CustomerPhone *string // Телефон клиента
	Notes         *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
