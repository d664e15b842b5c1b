package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/finboard/backend/internal/domain/ledger"
)

// MockIncomeRepository is a mock implementation of ledger.IncomeRepository
type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) FindByIDForUser(ctx context.Context, userID, id int64) (*ledger.Income, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Income), args.Error(1)
}

func (m *MockIncomeRepository) FindAllForUser(ctx context.Context, userID int64) ([]ledger.Income, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]ledger.Income), args.Error(1)
}

func (m *MockIncomeRepository) FindRecentForUser(ctx context.Context, userID int64, limit int) ([]ledger.Income, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]ledger.Income), args.Error(1)
}

func (m *MockIncomeRepository) Save(ctx context.Context, income *ledger.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockIncomeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIncomeRepository) DeleteForUser(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockIncomeRepository) SumForUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockIncomeRepository) SumForUserBetween(ctx context.Context, userID int64, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockIncomeRepository) SumByCategoryForUser(ctx context.Context, userID int64) ([]ledger.CategoryTotal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]ledger.CategoryTotal), args.Error(1)
}

func (m *MockIncomeRepository) DatedValuesForUser(ctx context.Context, userID int64) ([]ledger.DatedValue, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]ledger.DatedValue), args.Error(1)
}

// MockSpendRepository is a mock implementation of ledger.SpendRepository
type MockSpendRepository struct {
	mock.Mock
}

func (m *MockSpendRepository) FindByIDForUser(ctx context.Context, userID, id int64) (*ledger.Spend, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Spend), args.Error(1)
}

func (m *MockSpendRepository) FindAllForUser(ctx context.Context, userID int64) ([]ledger.Spend, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]ledger.Spend), args.Error(1)
}

func (m *MockSpendRepository) FindRecentForUser(ctx context.Context, userID int64, limit int) ([]ledger.Spend, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]ledger.Spend), args.Error(1)
}

func (m *MockSpendRepository) Save(ctx context.Context, spend *ledger.Spend) error {
	args := m.Called(ctx, spend)
	return args.Error(0)
}

func (m *MockSpendRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSpendRepository) DeleteForUser(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockSpendRepository) SumForUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSpendRepository) SumForUserBetween(ctx context.Context, userID int64, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSpendRepository) SumByCategoryForUser(ctx context.Context, userID int64) ([]ledger.CategoryTotal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]ledger.CategoryTotal), args.Error(1)
}

func (m *MockSpendRepository) DatedValuesForUser(ctx context.Context, userID int64) ([]ledger.DatedValue, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]ledger.DatedValue), args.Error(1)
}

// MockRecorder captures write metrics
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordWrite(ctx context.Context, kind, op string, amount decimal.Decimal) {
	m.Called(ctx, kind, op, amount)
}

// Simple repositories for the account service

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Save(ctx context.Context, a *ledger.Account) error {
	return m.Called(ctx, a).Error(0)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Save(ctx context.Context, c *ledger.Category) error {
	return m.Called(ctx, c).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*ledger.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, u *ledger.User) error {
	return m.Called(ctx, u).Error(0)
}
