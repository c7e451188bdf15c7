package models

import (
	"github.com/shopspring/decimal"

	"github.com/avdnv/court-booking-service/internal/domain"
)

// Request модели

// RuleInput одно правило в запросе на замену правил филиала
type RuleInput struct {
	StartHour  int             `json:"startHour"`
	EndHour    int             `json:"endHour"`
	Label      string          `json:"label"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// ReplaceRulesRequest запрос на замену правил ценообразования филиала
// Порядок правил в списке задает приоритет применения
type ReplaceRulesRequest struct {
	UserID   int64       `json:"userId"`
	BranchID int64       `json:"branchId"`
	Rules    []RuleInput `json:"rules"`
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID         int64           `json:"id"`
	BranchID   int64           `json:"branchId"`
	StartHour  int             `json:"startHour"`
	EndHour    int             `json:"endHour"`
	Label      string          `json:"label"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Position   int             `json:"position"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// ToDomainRules конвертирует запрос в domain модели, сохраняя порядок
func (r *ReplaceRulesRequest) ToDomainRules() []*domain.PeakRule {
	rules := make([]*domain.PeakRule, len(r.Rules))
	for i, input := range r.Rules {
		rules[i] = &domain.PeakRule{
			BranchID:   r.BranchID,
			StartHour:  input.StartHour,
			EndHour:    input.EndHour,
			Label:      input.Label,
			Multiplier: input.Multiplier,
			Position:   i,
		}
	}
	return rules
}

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.PeakRule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:         r.ID,
		BranchID:   r.BranchID,
		StartHour:  r.StartHour,
		EndHour:    r.EndHour,
		Label:      r.Label,
		Multiplier: r.Multiplier,
		Position:   r.Position,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.PeakRule) *RuleListResponse {
	if rules == nil {
		return &RuleListResponse{
			Rules: []RuleResponse{},
		}
	}

	resp := &RuleListResponse{
		Rules: make([]RuleResponse, len(rules)),
	}

	for i, rule := range rules {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules[i] = *ruleResp
		}
	}

	return resp
}
