package courts

import (
	"context"
	"errors"
	"fmt"

	courtRepo "github.com/avdnv/court-booking-service/internal/infra/storage/court"
	venueClient "github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	"github.com/avdnv/court-booking-service/internal/service/courts/models"
)

// Service сервис для работы с кортами
type Service struct {
	courtRepo   CourtRepository
	venueClient VenueServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(
	courtRepo CourtRepository,
	venueClient VenueServiceClient,
	logger Logger,
) *Service {
	return &Service{
		courtRepo:   courtRepo,
		venueClient: venueClient,
		logger:      logger,
	}
}

// Create создает новый корт
// Доступно только менеджерам филиала
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Create: creating court %q for branch=%d by user=%d", req.Name, req.BranchID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.BranchID, req.UserID); err != nil {
		return nil, err
	}

	court := req.ToDomainCourt()
	if req.Name == "" || !court.HasValidRate() {
		s.logger.Warn("Create: invalid court data for branch=%d: name=%q, rate=%s", req.BranchID, req.Name, req.HourlyRate)
		return nil, fmt.Errorf("%w: name and positive hourly rate are required", ErrInvalidInput)
	}

	created, err := s.courtRepo.Create(ctx, court)
	if err != nil {
		s.logger.Error("Create: repository error for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created court id=%d for branch=%d", created.ID, req.BranchID)
	return models.FromDomainCourt(created), nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	s.logger.Info("GetByID: fetching court id=%d", id)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(court), nil
}

// GetCourts получает список кортов филиала
// Публичная операция, по умолчанию возвращает только активные корты
func (s *Service) GetCourts(ctx context.Context, req *models.GetCourtsRequest) (*models.CourtListResponse, error) {
	s.logger.Info("GetCourts: fetching courts for branch=%d, includeInactive=%t", req.BranchID, req.IncludeInactive)

	courts, err := s.courtRepo.ListByBranch(ctx, req.BranchID, req.IncludeInactive)
	if err != nil {
		s.logger.Error("GetCourts: repository error for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: GetCourts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCourts: successfully fetched %d courts for branch=%d", len(courts), req.BranchID)
	return models.FromDomainCourtList(courts), nil
}

// Update обновляет атрибуты корта
// Доступно только менеджерам филиала; nil-поля запроса не изменяются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("Update: updating court id=%d by user=%d", id, req.UserID)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, court.BranchID, req.UserID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.CourtType != nil {
		court.CourtType = *req.CourtType
	}
	if req.HourlyRate != nil {
		court.HourlyRate = *req.HourlyRate
	}
	if req.IsActive != nil {
		court.IsActive = *req.IsActive
	}

	if court.Name == "" || !court.HasValidRate() {
		s.logger.Warn("Update: invalid court data for court id=%d", id)
		return nil, fmt.Errorf("%w: name and positive hourly rate are required", ErrInvalidInput)
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Update: court id=%d not found during update", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("Update: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated court id=%d", id)
	return models.FromDomainCourt(court), nil
}

// Delete удаляет корт
// Доступно только менеджерам филиала
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting court id=%d by user=%d", id, userID)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Delete: court id=%d not found", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Delete: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, court.BranchID, userID); err != nil {
		return err
	}

	if err := s.courtRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("Delete: court id=%d not found during delete", id)
			return ErrCourtNotFound
		}
		s.logger.Error("Delete: repository error for court id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted court id=%d", id)
	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером филиала
func (s *Service) checkManagerAccess(ctx context.Context, branchID int64, userID int64) error {
	branch, err := s.venueClient.GetBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, venueClient.ErrBranchNotFound) {
			s.logger.Warn("checkManagerAccess: branch id=%d not found", branchID)
			return ErrBranchNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get branch id=%d: %v", branchID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get branch: %v", ErrInternal, err)
	}

	if branch.IsManager(userID) {
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of branch=%d", userID, branchID)
	return ErrAccessDenied
}
