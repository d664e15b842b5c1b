package ledger

import (
	"github.com/finboard/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Amounts are stored as NUMERIC(18,4).
const amountScale = 4

var maxAmount = decimal.New(1, 14)

// validateAmount rejects values the amount columns cannot hold exactly
func validateAmount(field string, v decimal.Decimal) error {
	if v.Abs().GreaterThanOrEqual(maxAmount) {
		return shared.NewDomainError("INVALID_VALUE", field+" must be less than 100000000000000")
	}
	if !v.Round(amountScale).Equal(v) {
		return shared.NewDomainError("INVALID_VALUE", field+" cannot have more than 4 decimal places")
	}
	return nil
}
