package ledger

import (
	"context"
	"time"

	"github.com/finboard/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed value of one category
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// DatedValue is the (date, value) projection of a record, used for daily series
type DatedValue struct {
	Date  time.Time
	Value decimal.Decimal
}

// Aggregates are the read-only sums shared by both transaction tables
type Aggregates interface {
	// SumForUser sums every value owned by the user, 0 when there are none
	SumForUser(ctx context.Context, userID int64) (decimal.Decimal, error)
	// SumForUserBetween sums values dated within [from, to]
	SumForUserBetween(ctx context.Context, userID int64, from, to time.Time) (decimal.Decimal, error)
	// SumByCategoryForUser groups by category, ordered by category name
	SumByCategoryForUser(ctx context.Context, userID int64) ([]CategoryTotal, error)
	// DatedValuesForUser projects every record to its date and value
	DatedValuesForUser(ctx context.Context, userID int64) ([]DatedValue, error)
}

// IncomeRepository persists Income records. FindAllForUser and FindRecentForUser
// order by date descending, then id descending.
type IncomeRepository interface {
	shared.OwnedRepository[Income]
	Aggregates
	FindRecentForUser(ctx context.Context, userID int64, limit int) ([]Income, error)
}

// SpendRepository persists Spend records. FindAllForUser and FindRecentForUser
// order by date descending, then id descending.
type SpendRepository interface {
	shared.OwnedRepository[Spend]
	Aggregates
	FindRecentForUser(ctx context.Context, userID int64, limit int) ([]Spend, error)
}

// UserRepository persists user profiles
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	Save(ctx context.Context, user *User) error
}

// AccountRepository persists accounts
type AccountRepository interface {
	Save(ctx context.Context, account *Account) error
}

// CategoryRepository persists categories. Save writes the subcategory and
// the category atomically.
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
}
