package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finboard/backend/internal/domain/ledger"
)

// CreateAccountInput carries the fields of a new account
type CreateAccountInput struct {
	UserID  int64
	Name    string
	Type    string
	Balance decimal.Decimal
}

// CreateCategoryInput carries a category name and its single subcategory
type CreateCategoryInput struct {
	UserID      int64
	Name        string
	Subcategory string
}

// AccountService creates the reference data around transactions:
// accounts, categories and user profiles.
type AccountService struct {
	accounts   ledger.AccountRepository
	categories ledger.CategoryRepository
	users      ledger.UserRepository
}

// NewAccountService creates an AccountService
func NewAccountService(
	accounts ledger.AccountRepository,
	categories ledger.CategoryRepository,
	users ledger.UserRepository,
) *AccountService {
	return &AccountService{
		accounts:   accounts,
		categories: categories,
		users:      users,
	}
}

// CreateAccount persists a new account
func (s *AccountService) CreateAccount(ctx context.Context, in CreateAccountInput) (*AccountResponse, error) {
	account, err := ledger.NewAccount(in.UserID, in.Name, in.Type, in.Balance)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, err
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

// CreateCategory persists a category and its subcategory in one transaction
func (s *AccountService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*CategoryResponse, error) {
	category, err := ledger.NewCategory(in.UserID, in.Name, in.Subcategory)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

// CreateUser persists a user profile
func (s *AccountService) CreateUser(ctx context.Context, name string) (*UserResponse, error) {
	user, err := ledger.NewUser(name)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}
