package get_branch_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	branchID int64,
	userID int64,
	courtIDStr string,
	statusStr string,
	dateStr string,
	includeInactiveStr string,
) (*models.GetBranchBookingsRequest, error) {
	req := &models.GetBranchBookingsRequest{
		UserID:          userID,
		BranchID:        branchID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим courtId если указан
	if courtIDStr != "" {
		courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CourtID = &courtID
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим date если указана
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
