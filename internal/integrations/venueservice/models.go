package venueservice

import "github.com/avdnv/court-booking-service/pkg/types"

// Branch модель филиала из VenueService
type Branch struct {
	ID         int64                  `json:"id"`
	VenueID    int64                  `json:"venue_id"`
	Name       string                 `json:"name"`
	Address    string                 `json:"address"`
	Timezone   string                 `json:"timezone"`
	ManagerIDs []int64                `json:"manager_ids"`
	Schedule   map[string]DaySchedule `json:"schedule"`
}

// DaySchedule рабочие часы филиала на день недели.
// Ключ в Schedule - день недели в нижнем регистре ("monday" ... "sunday").
type DaySchedule struct {
	IsOpen   bool             `json:"is_open"`
	OpensAt  types.TimeString `json:"opens_at"`
	ClosesAt types.TimeString `json:"closes_at"`
}

// ErrorResponse модель ошибки от VenueService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IsManager проверяет, является ли пользователь менеджером филиала
func (b *Branch) IsManager(userID int64) bool {
	for _, id := range b.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
