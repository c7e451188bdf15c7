package pricingrule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avdnv/court-booking-service/internal/domain"
	"github.com/avdnv/court-booking-service/pkg/dbmetrics"
	"github.com/avdnv/court-booking-service/pkg/psqlbuilder"
)

var ruleColumns = []string{
	"id",
	"branch_id",
	"start_hour",
	"end_hour",
	"label",
	"multiplier",
	"position",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с правилами пикового ценообразования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил ценообразования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByBranch получает правила филиала в порядке приоритета.
/// Порядок важен: при пересечении окон применяется первое подходящее правило.
func (r *Repository) ListByBranch(ctx context.Context, branchID int64) ([]*domain.PeakRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("court_pricing_rules").
		Where(squirrel.Eq{"branch_id": branchID}).
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranch - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranch - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.PeakRule, 0)
	for rows.Next() {
		var rule domain.PeakRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.BranchID,
			&rule.StartHour,
			&rule.EndHour,
			&rule.Label,
			&rule.Multiplier,
			&rule.Position,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBranch - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBranch - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// ReplaceForBranch атомарно заменяет набор правил филиала.
// Вызывается внутри транзакции менеджера транзакций: удаление старых
// и вставка новых правил либо применяются вместе, либо не применяются вовсе.
func (r *Repository) ReplaceForBranch(ctx context.Context, branchID int64, rules []*domain.PeakRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("court_pricing_rules").
		Where(squirrel.Eq{"branch_id": branchID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForBranch - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBranch - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("court_pricing_rules").
		Columns("branch_id", "start_hour", "end_hour", "label", "multiplier", "position")

	for i, rule := range rules {
		insertBuilder = insertBuilder.Values(
			branchID,
			rule.StartHour,
			rule.EndHour,
			rule.Label,
			rule.Multiplier,
			i,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBranch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForBranch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
