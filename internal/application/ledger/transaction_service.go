// Package ledger holds the write-side use cases for income and spend records.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/finboard/backend/internal/infrastructure/logger"
)

// WriteRecorder observes successful writes
type WriteRecorder interface {
	RecordWrite(ctx context.Context, kind, op string, amount decimal.Decimal)
}

type nopRecorder struct{}

func (nopRecorder) RecordWrite(context.Context, string, string, decimal.Decimal) {}

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// TransactionService validates and persists income and spend records
type TransactionService struct {
	incomes  ledger.IncomeRepository
	spends   ledger.SpendRepository
	recorder WriteRecorder
}

// NewTransactionService creates a TransactionService. A nil recorder disables write metrics.
func NewTransactionService(
	incomes ledger.IncomeRepository,
	spends ledger.SpendRepository,
	recorder WriteRecorder,
) *TransactionService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &TransactionService{
		incomes:  incomes,
		spends:   spends,
		recorder: recorder,
	}
}

// ===================== Income =====================

// CreateIncome records a new income for userID
func (s *TransactionService) CreateIncome(ctx context.Context, userID int64, entry ledger.Entry) (*IncomeResponse, error) {
	income, err := ledger.NewIncome(userID, entry)
	if err != nil {
		return nil, err
	}
	if err := s.incomes.Save(ctx, income); err != nil {
		return nil, err
	}
	s.recorder.RecordWrite(ctx, ledger.KindIncome.String(), opCreate, income.Value)

	resp := ToIncomeResponse(income)
	return &resp, nil
}

// GetIncome returns one income owned by userID
func (s *TransactionService) GetIncome(ctx context.Context, userID, id int64) (*IncomeResponse, error) {
	income, err := s.incomes.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToIncomeResponse(income)
	return &resp, nil
}

// UpdateIncome replaces every mutable field of an income owned by userID
func (s *TransactionService) UpdateIncome(ctx context.Context, userID, id int64, entry ledger.Entry) (*IncomeResponse, error) {
	income, err := s.incomes.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := income.Replace(entry); err != nil {
		return nil, err
	}
	if err := s.incomes.Save(ctx, income); err != nil {
		return nil, err
	}
	s.recorder.RecordWrite(ctx, ledger.KindIncome.String(), opUpdate, income.Value)

	resp := ToIncomeResponse(income)
	return &resp, nil
}

// DeleteIncome removes an income. A positive ownerID restricts the delete to
// that user's row; zero deletes by id alone.
func (s *TransactionService) DeleteIncome(ctx context.Context, id, ownerID int64) error {
	var err error
	if ownerID > 0 {
		err = s.incomes.DeleteForUser(ctx, ownerID, id)
	} else {
		err = s.incomes.Delete(ctx, id)
	}
	if err != nil {
		return err
	}
	s.recorder.RecordWrite(ctx, ledger.KindIncome.String(), opDelete, decimal.Zero)
	logger.L(ctx).Info("Income deleted", zap.Int64("income_id", id))
	return nil
}

// ===================== Spend =====================

// CreateSpend records a new spend for userID
func (s *TransactionService) CreateSpend(ctx context.Context, userID int64, entry ledger.Entry, status string) (*SpendResponse, error) {
	spend, err := ledger.NewSpend(userID, entry, status)
	if err != nil {
		return nil, err
	}
	if err := s.spends.Save(ctx, spend); err != nil {
		return nil, err
	}
	s.recorder.RecordWrite(ctx, ledger.KindSpend.String(), opCreate, spend.Value)

	resp := ToSpendResponse(spend)
	return &resp, nil
}

// GetSpend returns one spend owned by userID
func (s *TransactionService) GetSpend(ctx context.Context, userID, id int64) (*SpendResponse, error) {
	spend, err := s.spends.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToSpendResponse(spend)
	return &resp, nil
}

// UpdateSpend replaces every mutable field of a spend owned by userID
func (s *TransactionService) UpdateSpend(ctx context.Context, userID, id int64, entry ledger.Entry, status string) (*SpendResponse, error) {
	spend, err := s.spends.FindByIDForUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := spend.Replace(entry, status); err != nil {
		return nil, err
	}
	if err := s.spends.Save(ctx, spend); err != nil {
		return nil, err
	}
	s.recorder.RecordWrite(ctx, ledger.KindSpend.String(), opUpdate, spend.Value)

	resp := ToSpendResponse(spend)
	return &resp, nil
}

// DeleteSpend removes a spend. A positive ownerID restricts the delete to
// that user's row; zero deletes by id alone.
func (s *TransactionService) DeleteSpend(ctx context.Context, id, ownerID int64) error {
	var err error
	if ownerID > 0 {
		err = s.spends.DeleteForUser(ctx, ownerID, id)
	} else {
		err = s.spends.Delete(ctx, id)
	}
	if err != nil {
		return err
	}
	s.recorder.RecordWrite(ctx, ledger.KindSpend.String(), opDelete, decimal.Zero)
	logger.L(ctx).Info("Spend deleted", zap.Int64("spend_id", id))
	return nil
}
