package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdnv/court-booking-service/internal/availability"
	"github.com/avdnv/court-booking-service/internal/domain"
	courtRepo "github.com/avdnv/court-booking-service/internal/infra/storage/court"
	customerClient "github.com/avdnv/court-booking-service/internal/integrations/customerservice"
	venueClient "github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	"github.com/avdnv/court-booking-service/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	courtRepo      CourtRepository
	ruleRepo       PricingRuleRepository
	venueClient    VenueServiceClient
	customerClient CustomerServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	ruleRepo PricingRuleRepository,
	venueClient VenueServiceClient,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		courtRepo:      courtRepo,
		ruleRepo:       ruleRepo,
		venueClient:    venueClient,
		customerClient: customerClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка конфликта и вставка выполняются атомарно, чтение бронирований
// внутри транзакции блокирует строки через FOR UPDATE
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, court=%d, date=%s, time=%s-%s",
		req.CustomerID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация интервала: start < end, выравнивание по сетке слотов
	if err := validateInterval(req.StartTime, req.EndTime, domain.DefaultGranularityMinutes); err != nil {
		uc.logger.Warn("CreateBooking: interval validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Дата и время начала не должны быть в прошлом
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: past time validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("CreateBooking: court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 6. Проверяем окно бронирования филиала на дату
	windowStart, windowEnd, open, err := uc.resolveWindow(ctx, court.BranchID, req.Date)
	if err != nil {
		return nil, err
	}
	if !open {
		uc.logger.Warn("CreateBooking: branch=%d is closed on %s", court.BranchID, req.Date.Format(domain.DateFormat))
		return nil, ErrBranchClosed
	}

	if err := validateWindow(req.StartTime, req.EndTime, windowStart, windowEnd); err != nil {
		uc.logger.Warn("CreateBooking: window validation failed: %v", err)
		return nil, err
	}

	// 7. Получаем правила ценообразования филиала
	rules, err := uc.ruleRepo.ListByBranch(ctx, court.BranchID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get pricing rules for branch=%d: %v", court.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}
	domainRules := derefRules(rules)

	// 8. Получаем профиль клиента с graceful degradation:
	// недоступность CustomerService не блокирует бронирование
	var customerName, customerPhone *string
	customer, err := uc.customerClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	if err != nil {
		if !errors.Is(err, customerClient.ErrServiceDegraded) && !errors.Is(err, customerClient.ErrCustomerNotFound) {
			uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
			return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
		uc.logger.Warn("CreateBooking: creating booking without customer profile for customer=%d", req.CustomerID)
	} else {
		customerName = &customer.FullName
		customerPhone = &customer.Phone
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 9. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Получаем активные бронирования корта на дату с блокировкой (FOR UPDATE)
		filter := domain.CourtBookingsFilter{
			CourtID:         req.CourtID,
			Date:            &req.Date,
			IncludeInactive: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetByCourtAndDate(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.2. Проверяем пересечение с существующими бронированиями
		conflict, err := availability.HasConflict(req.CourtID, req.Date, req.StartTime, req.EndTime, bookings, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateBooking: interval %s-%s conflicts with existing booking on court=%d",
				req.StartTime, req.EndTime, req.CourtID)
			return ErrSlotConflict
		}

		// 9.3. Рассчитываем итоговую цену
		price, err := availability.PriceInterval(court, req.StartTime, req.EndTime, domainRules)
		if err != nil {
			uc.logger.Error("CreateBooking: pricing failed: %v", err)
			return fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
		}

		// 9.4. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			CustomerID:  req.CustomerID,
			CourtID:     req.CourtID,
			BranchID:    court.BranchID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      domain.StatusConfirmed,
			TotalPrice:  price,
			// Денормализация данных корта
			CourtName: court.Name,
			CourtType: court.CourtType,
			// Денормализация данных клиента
			CustomerName:  customerName,
			CustomerPhone: customerPhone,
			// Заметки
			Notes: req.Notes,
		}

		// 9.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%s", result.ID, result.TotalPrice)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		CourtID:         result.CourtID,
		BranchID:        result.BranchID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes(),
		Status:          string(result.Status),
		TotalPrice:      result.TotalPrice,
		CourtName:       result.CourtName,
		CourtType:       result.CourtType,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// resolveWindow определяет окно бронирования филиала на дату.
// При недоступности VenueService используется окно по умолчанию 06:00-22:00.
func (uc *UseCase) resolveWindow(ctx context.Context, branchID int64, date time.Time) (start, end types.TimeString, open bool, err error) {
	branch, branchErr := uc.venueClient.GetBranch(ctx, branchID)
	if branchErr != nil {
		if errors.Is(branchErr, venueClient.ErrBranchNotFound) {
			uc.logger.Warn("CreateBooking: branch id=%d not found", branchID)
			return "", "", false, ErrBranchNotFound
		}
		uc.logger.Error("CreateBooking: failed to get branch id=%d, using default window: %v", branchID, branchErr)
		return domain.BookableDayStart, domain.BookableDayEnd, true, nil
	}

	return branchWindow(branch, date)
}
