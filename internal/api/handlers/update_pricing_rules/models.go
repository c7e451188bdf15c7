package update_pricing_rules

import (
	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/service/pricing/models"
)

// RuleInput одно правило в HTTP запросе
type RuleInput struct {
	StartHour  int             `json:"startHour"`
	EndHour    int             `json:"endHour"`
	Label      string          `json:"label"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// ReplaceRulesRequest HTTP request model
// Порядок правил в списке задает приоритет применения
type ReplaceRulesRequest struct {
	Rules []RuleInput `json:"rules"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ReplaceRulesRequest) ToServiceRequest(branchID, userID int64) *models.ReplaceRulesRequest {
	rules := make([]models.RuleInput, len(r.Rules))
	for i, rule := range r.Rules {
		rules[i] = models.RuleInput{
			StartHour:  rule.StartHour,
			EndHour:    rule.EndHour,
			Label:      rule.Label,
			Multiplier: rule.Multiplier,
		}
	}

	return &models.ReplaceRulesRequest{
		UserID:   userID,
		BranchID: branchID,
		Rules:    rules,
	}
}
