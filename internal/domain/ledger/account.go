package ledger

import (
	"strings"

	"github.com/finboard/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Account is a named money container (bank, cash, card) owned by a user.
// Reporting never reads it.
type Account struct {
	shared.BaseEntity
	UserID  int64
	Name    string
	Type    string
	Balance decimal.Decimal
}

// NewAccount creates a validated account
func NewAccount(userID int64, name, accountType string, balance decimal.Decimal) (*Account, error) {
	if err := validateOwner(userID); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot exceed 100 characters")
	}
	accountType = strings.TrimSpace(accountType)
	if accountType == "" {
		return nil, shared.NewDomainError("INVALID_TYPE", "Account type cannot be empty")
	}
	if err := validateAmount("Balance", balance); err != nil {
		return nil, err
	}
	return &Account{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Name:       name,
		Type:       accountType,
		Balance:    balance,
	}, nil
}
