package pricing

import (
	"context"
	"errors"
	"fmt"

	venueClient "github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	"github.com/avdnv/court-booking-service/internal/service/pricing/models"
)

// Service сервис для работы с правилами пикового ценообразования
type Service struct {
	ruleRepo    PricingRuleRepository
	venueClient VenueServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса ценообразования
func NewService(
	ruleRepo PricingRuleRepository,
	venueClient VenueServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:    ruleRepo,
		venueClient: venueClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetRules получает правила филиала в порядке приоритета
// Публичная операция - клиентам нужны правила для расчета цен
func (s *Service) GetRules(ctx context.Context, branchID int64) (*models.RuleListResponse, error) {
	s.logger.Info("GetRules: fetching pricing rules for branch=%d", branchID)

	rules, err := s.ruleRepo.ListByBranch(ctx, branchID)
	if err != nil {
		s.logger.Error("GetRules: repository error for branch=%d: %v", branchID, err)
		return nil, fmt.Errorf("%w: GetRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRules: successfully fetched %d rules for branch=%d", len(rules), branchID)
	return models.FromDomainRuleList(rules), nil
}

// ReplaceRules атомарно заменяет набор правил филиала
// Доступно только менеджерам филиала
func (s *Service) ReplaceRules(ctx context.Context, req *models.ReplaceRulesRequest) (*models.RuleListResponse, error) {
	s.logger.Info("ReplaceRules: replacing %d rules for branch=%d by user=%d", len(req.Rules), req.BranchID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.BranchID, req.UserID); err != nil {
		return nil, err
	}

	rules := req.ToDomainRules()
	for i, rule := range rules {
		if !rule.IsValid() {
			s.logger.Warn("ReplaceRules: invalid rule at position %d for branch=%d: [%d, %d) x%s",
				i, req.BranchID, rule.StartHour, rule.EndHour, rule.Multiplier)
			return nil, fmt.Errorf("%w: rule at position %d has invalid hour range or multiplier", ErrInvalidRule, i)
		}
	}

	// Удаление старых и вставка новых правил в одной транзакции
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.ruleRepo.ReplaceForBranch(ctx, req.BranchID, rules)
	})
	if err != nil {
		s.logger.Error("ReplaceRules: transaction error for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: ReplaceRules - transaction error: %v", ErrInternal, err)
	}

	// Возвращаем сохраненный набор
	saved, err := s.ruleRepo.ListByBranch(ctx, req.BranchID)
	if err != nil {
		s.logger.Error("ReplaceRules: failed to reload rules for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: ReplaceRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceRules: successfully replaced rules for branch=%d, now %d rules", req.BranchID, len(saved))
	return models.FromDomainRuleList(saved), nil
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
