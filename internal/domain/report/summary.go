package report

import (
	"sort"
	"time"

	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// InfoText is the fixed insight line shown under every summary.
// It is not computed from data.
const InfoText = "Your Spender 20% more of last month"

// Day is an inclusive [Start, End] window covering one calendar day
type Day struct {
	Start time.Time
	End   time.Time
}

// DayOf returns the calendar day containing now, in now's location.
// End is the last representable instant before the next midnight.
func DayOf(now time.Time) Day {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return Day{
		Start: start,
		End:   start.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}
}

// SortByCategory returns a copy ordered by category name. The result is never nil.
func SortByCategory(totals []ledger.CategoryTotal) []ledger.CategoryTotal {
	out := make([]ledger.CategoryTotal, len(totals))
	copy(out, totals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}

// Balance is total income minus total spends
func Balance(totalIncome, totalSpends decimal.Decimal) decimal.Decimal {
	return totalIncome.Sub(totalSpends)
}
