package get_available_slots

import (
	"time"

	"github.com/avdnv/court-booking-service/internal/domain"
)

// Request модель запроса на получение слотов корта
type Request struct {
	UserID  int64     // ID пользователя (для логирования, не влияет на результат)
	CourtID int64     // ID корта
	Date    time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	CourtID  int64                  // ID корта
	BranchID int64                  // ID филиала
	Date     time.Time              // Дата, на которую запрашивались слоты
	Slots    []domain.AvailableSlot // Все слоты дня, занятые и свободные
}
