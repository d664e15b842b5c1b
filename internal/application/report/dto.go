package report

import (
	"time"

	appledger "github.com/finboard/backend/internal/application/ledger"
	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/finboard/backend/internal/domain/report"
)

// CategoryAmount is one bar of the category chart
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// PieSlice is one slice of the category chart
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// IncomeSummaryResponse is the income category summary. The record list
// keeps its historical key "spends" even though it holds incomes.
type IncomeSummaryResponse struct {
	TotalIncome float64                    `json:"totalIncome"`
	Bar         []CategoryAmount           `json:"bar"`
	Pie         []PieSlice                 `json:"pie"`
	Spends      []appledger.IncomeResponse `json:"spends"`
	InfoText    string                     `json:"infoText"`
}

// SpendSummaryResponse is the spend category summary
type SpendSummaryResponse struct {
	TotalSpend float64                   `json:"totalSpend"`
	Bar        []CategoryAmount          `json:"bar"`
	Pie        []PieSlice                `json:"pie"`
	Spends     []appledger.SpendResponse `json:"spends"`
	InfoText   string                    `json:"infoText"`
}

// DailyPointResponse is one day of the income/spend series
type DailyPointResponse struct {
	Date   string  `json:"date"`
	Income float64 `json:"income"`
	Spend  float64 `json:"spend"`
}

// DashboardResponse combines balances, today's totals, the income
// breakdown and the daily series
type DashboardResponse struct {
	NameUser    string                     `json:"nameUser"`
	TotalIncome float64                    `json:"totalIncome"`
	TotalSpends float64                    `json:"totalSpends"`
	Balance     float64                    `json:"balance"`
	DailyIncome float64                    `json:"dailyIncome"`
	DailySpends float64                    `json:"dailySpends"`
	Bar         []CategoryAmount           `json:"bar"`
	Pie         []PieSlice                 `json:"pie"`
	DailyData   []DailyPointResponse       `json:"dailyData"`
	Spends      []appledger.SpendResponse  `json:"spends"`
	Incomes     []appledger.IncomeResponse `json:"incomes"`
	InfoText    string                     `json:"infoText"`
}

// TransactionResponse is an income or spend row tagged with its type
type TransactionResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	Value       float64   `json:"value"`
	StatusSpend string    `json:"statusSpend,omitempty"`
	Description string    `json:"description"`
	People      string    `json:"people"`
	UserID      int64     `json:"userId"`
}

// RecentTransactionsResponse is the merged feed plus the per-kind lists it was built from
type RecentTransactionsResponse struct {
	Transactions []TransactionResponse      `json:"transactions"`
	Incomes      []appledger.IncomeResponse `json:"incomes"`
	Spends       []appledger.SpendResponse  `json:"spends"`
}

// toCharts renders one category breakdown as both chart shapes
func toCharts(totals []ledger.CategoryTotal) ([]CategoryAmount, []PieSlice) {
	bar := make([]CategoryAmount, 0, len(totals))
	pie := make([]PieSlice, 0, len(totals))
	for _, t := range totals {
		amount := t.Amount.InexactFloat64()
		bar = append(bar, CategoryAmount{Category: t.Category, Amount: amount})
		pie = append(pie, PieSlice{Name: t.Category, Value: amount})
	}
	return bar, pie
}

func toDailyResponses(points []report.DailyPoint) []DailyPointResponse {
	out := make([]DailyPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, DailyPointResponse{
			Date:   p.Date,
			Income: p.Income.InexactFloat64(),
			Spend:  p.Spend.InexactFloat64(),
		})
	}
	return out
}

func toTransactionResponses(txs []report.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, TransactionResponse{
			ID:          t.ID,
			Type:        t.Kind.String(),
			Category:    t.Entry.Category,
			Date:        t.Entry.Date,
			Value:       t.Entry.Value.InexactFloat64(),
			StatusSpend: t.StatusSpend,
			Description: t.Entry.Description,
			People:      t.Entry.People,
			UserID:      t.UserID,
		})
	}
	return out
}
