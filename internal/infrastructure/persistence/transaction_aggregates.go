package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// newestFirst orders record lists by date, and same-date rows by the most
// recent insert. Every list query uses it.
const newestFirst = "occurred_at DESC, id DESC"

// transactionAggregates implements ledger.Aggregates over one transaction
// table. Incomes and spends share the column layout, only the table differs.
type transactionAggregates struct {
	db    *gorm.DB
	table string
}

// SumForUser sums every amount owned by the user
func (a transactionAggregates) SumForUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := a.db.WithContext(ctx).Table(a.table).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("sum %s: %w", a.table, err)
	}
	return result.Total, nil
}

// SumForUserBetween sums amounts dated within [from, to]
func (a transactionAggregates) SumForUserBetween(ctx context.Context, userID int64, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := a.db.WithContext(ctx).Table(a.table).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND occurred_at >= ? AND occurred_at <= ?", userID, from, to).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("sum %s between: %w", a.table, err)
	}
	return result.Total, nil
}

// SumByCategoryForUser groups amounts by category, ordered by category name
func (a transactionAggregates) SumByCategoryForUser(ctx context.Context, userID int64) ([]ledger.CategoryTotal, error) {
	var rows []struct {
		Category string
		Amount   decimal.Decimal
	}
	if err := a.db.WithContext(ctx).Table(a.table).
		Select("category, COALESCE(SUM(amount), 0) AS amount").
		Where("user_id = ?", userID).
		Group("category").
		Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("sum %s by category: %w", a.table, err)
	}

	totals := make([]ledger.CategoryTotal, len(rows))
	for i, r := range rows {
		totals[i] = ledger.CategoryTotal{Category: r.Category, Amount: r.Amount}
	}
	return totals, nil
}

// DatedValuesForUser projects the user's records to (occurred_at, amount).
// Calendar-day bucketing happens in the caller's timezone, not in SQL.
func (a transactionAggregates) DatedValuesForUser(ctx context.Context, userID int64) ([]ledger.DatedValue, error) {
	var rows []struct {
		OccurredAt time.Time
		Amount     decimal.Decimal
	}
	if err := a.db.WithContext(ctx).Table(a.table).
		Select("occurred_at, amount").
		Where("user_id = ?", userID).
		Order("occurred_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s dates: %w", a.table, err)
	}

	values := make([]ledger.DatedValue, len(rows))
	for i, r := range rows {
		values[i] = ledger.DatedValue{Date: r.OccurredAt, Value: r.Amount}
	}
	return values, nil
}
