package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	"github.com/avdnv/court-booking-service/internal/service/pricing/models"
)

const (
	testManagerID  = int64(200)
	testStrangerID = int64(300)
	testBranchID   = int64(10)
)

type fakeRuleRepo struct {
	rules map[int64][]*domain.PeakRule
}

func (f *fakeRuleRepo) ListByBranch(_ context.Context, branchID int64) ([]*domain.PeakRule, error) {
	return f.rules[branchID], nil
}

func (f *fakeRuleRepo) ReplaceForBranch(_ context.Context, branchID int64, rules []*domain.PeakRule) error {
	saved := make([]*domain.PeakRule, len(rules))
	for i, r := range rules {
		clone := *r
		clone.ID = int64(i + 1)
		saved[i] = &clone
	}
	f.rules[branchID] = saved
	return nil
}

type fakeVenueClient struct {
	branches map[int64]*venueservice.Branch
}

func (f *fakeVenueClient) GetBranch(_ context.Context, branchID int64) (*venueservice.Branch, error) {
	b, ok := f.branches[branchID]
	if !ok {
		return nil, venueservice.ErrBranchNotFound
	}
	return b, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeRuleRepo) {
	repo := &fakeRuleRepo{rules: map[int64][]*domain.PeakRule{}}
	venue := &fakeVenueClient{branches: map[int64]*venueservice.Branch{
		testBranchID: {
			ID:         testBranchID,
			Name:       "Центральный",
			ManagerIDs: []int64{testManagerID},
		},
	}}
	return NewService(repo, venue, fakeTxManager{}, nopLogger{}), repo
}

func TestService_ReplaceRules_Success(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
		UserID:   testManagerID,
		BranchID: testBranchID,
		Rules: []models.RuleInput{
			{StartHour: 18, EndHour: 21, Label: "вечерний пик", Multiplier: decimal.RequireFromString("1.2")},
			{StartHour: 6, EndHour: 9, Label: "утренний пик", Multiplier: decimal.RequireFromString("1.1")},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Rules, 2)

	// Порядок из запроса сохраняется через position
	assert.Equal(t, 0, resp.Rules[0].Position)
	assert.Equal(t, "вечерний пик", resp.Rules[0].Label)
	assert.Equal(t, 1, resp.Rules[1].Position)
	assert.Len(t, repo.rules[testBranchID], 2)
}

func TestService_ReplaceRules_EmptyListClearsRules(t *testing.T) {
	svc, repo := newTestService()
	repo.rules[testBranchID] = []*domain.PeakRule{
		{BranchID: testBranchID, StartHour: 18, EndHour: 21, Multiplier: decimal.RequireFromString("1.2")},
	}

	resp, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
		UserID:   testManagerID,
		BranchID: testBranchID,
		Rules:    []models.RuleInput{},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Rules)
	assert.Empty(t, repo.rules[testBranchID])
}

func TestService_ReplaceRules_InvalidRule(t *testing.T) {
	svc, repo := newTestService()

	cases := []models.RuleInput{
		{StartHour: 21, EndHour: 18, Multiplier: decimal.RequireFromString("1.2")}, // start >= end
		{StartHour: -1, EndHour: 9, Multiplier: decimal.RequireFromString("1.2")},  // отрицательный час
		{StartHour: 18, EndHour: 25, Multiplier: decimal.RequireFromString("1.2")}, // за границей суток
		{StartHour: 18, EndHour: 21, Multiplier: decimal.Zero},                     // неположительный множитель
	}

	for _, rule := range cases {
		_, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
			UserID:   testManagerID,
			BranchID: testBranchID,
			Rules:    []models.RuleInput{rule},
		})
		assert.ErrorIs(t, err, ErrInvalidRule)
	}

	assert.Empty(t, repo.rules[testBranchID])
}

func TestService_ReplaceRules_AccessDenied(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
		UserID:   testStrangerID,
		BranchID: testBranchID,
		Rules:    []models.RuleInput{},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_ReplaceRules_BranchNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
		UserID:   testManagerID,
		BranchID: 999,
		Rules:    []models.RuleInput{},
	})
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestService_GetRules_ReturnsOrdered(t *testing.T) {
	svc, repo := newTestService()
	repo.rules[testBranchID] = []*domain.PeakRule{
		{ID: 1, BranchID: testBranchID, StartHour: 6, EndHour: 9, Label: "утро", Multiplier: decimal.RequireFromString("1.1"), Position: 0},
		{ID: 2, BranchID: testBranchID, StartHour: 18, EndHour: 21, Label: "вечер", Multiplier: decimal.RequireFromString("1.2"), Position: 1},
	}

	resp, err := svc.GetRules(context.Background(), testBranchID)
	require.NoError(t, err)
	require.Len(t, resp.Rules, 2)
	assert.Equal(t, "утро", resp.Rules[0].Label)
	assert.Equal(t, "вечер", resp.Rules[1].Label)
}
