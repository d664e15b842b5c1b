package ledger

import (
	"strings"
	"time"

	"github.com/finboard/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	maxCategoryLength    = 100
	maxDescriptionLength = 500
	maxPeopleLength      = 255
)

// Entry holds the mutable fields shared by income and spend records.
// An update replaces all of them at once.
type Entry struct {
	Category    string
	Date        time.Time
	Value       decimal.Decimal
	Description string
	People      string
}

// Validate checks the entry fields
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Category) == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if len(e.Category) > maxCategoryLength {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	if e.Date.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Date is required")
	}
	if e.Value.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Value cannot be negative")
	}
	if err := validateAmount("Value", e.Value); err != nil {
		return err
	}
	if len(e.Description) > maxDescriptionLength {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	if len(e.People) > maxPeopleLength {
		return shared.NewDomainError("INVALID_PEOPLE", "People cannot exceed 255 characters")
	}
	return nil
}

// normalize trims text fields and moves the date into server-local time,
// the zone daily buckets are computed in.
func (e Entry) normalize() Entry {
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)
	e.People = strings.TrimSpace(e.People)
	e.Date = e.Date.In(time.Local)
	return e
}

func validateOwner(userID int64) error {
	if userID <= 0 {
		return shared.NewDomainError("INVALID_USER", "User ID must be a positive integer")
	}
	return nil
}
