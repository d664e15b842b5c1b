package report

import (
	"sort"

	"github.com/finboard/backend/internal/domain/ledger"
)

// RecentLimit is how many records of each kind the recent feed shows
const RecentLimit = 5

// Transaction is an income or spend record tagged with its kind
type Transaction struct {
	Kind        ledger.Kind
	ID          int64
	UserID      int64
	Entry       ledger.Entry
	StatusSpend string
}

// MergeRecent tags both lists and merges them by date descending. At most
// limit rows of each kind are kept. The sort is stable over incomes followed
// by spends, so an income precedes a spend with the identical timestamp.
func MergeRecent(incomes []ledger.Income, spends []ledger.Spend, limit int) []Transaction {
	if limit > 0 {
		if len(incomes) > limit {
			incomes = incomes[:limit]
		}
		if len(spends) > limit {
			spends = spends[:limit]
		}
	}

	merged := make([]Transaction, 0, len(incomes)+len(spends))
	for _, i := range incomes {
		merged = append(merged, Transaction{
			Kind:   ledger.KindIncome,
			ID:     i.ID,
			UserID: i.UserID,
			Entry:  i.Entry,
		})
	}
	for _, s := range spends {
		merged = append(merged, Transaction{
			Kind:        ledger.KindSpend,
			ID:          s.ID,
			UserID:      s.UserID,
			Entry:       s.Entry,
			StatusSpend: s.StatusSpend,
		})
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Entry.Date.After(merged[b].Entry.Date)
	})
	return merged
}
