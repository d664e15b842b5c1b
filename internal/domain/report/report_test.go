package report

import (
	"testing"
	"time"

	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 5, 1, 13, 45, 10, 0, loc)

	day := DayOf(now)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, loc), day.Start)
	assert.Equal(t, time.Date(2024, 5, 1, 23, 59, 59, 999999999, loc), day.End)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, loc), day.End.Add(time.Nanosecond))
}

func TestSortByCategory(t *testing.T) {
	in := []ledger.CategoryTotal{
		{Category: "Rent", Amount: dec(900)},
		{Category: "Food", Amount: dec(120)},
		{Category: "Bonus", Amount: dec(50)},
	}

	out := SortByCategory(in)

	assert.Equal(t, []string{"Bonus", "Food", "Rent"}, []string{out[0].Category, out[1].Category, out[2].Category})
	assert.Equal(t, "Rent", in[0].Category, "input must not be reordered")
	assert.NotNil(t, SortByCategory(nil))
	assert.Empty(t, SortByCategory(nil))
}

func TestBalance(t *testing.T) {
	assert.True(t, Balance(dec(100), dec(40)).Equal(dec(60)))
	assert.True(t, Balance(decimal.Zero, decimal.Zero).IsZero())
	assert.True(t, Balance(dec(10), dec(25)).Equal(dec(-15)))
}

func TestBuildDailySeries(t *testing.T) {
	loc := time.UTC
	d1 := time.Date(2024, 5, 1, 8, 0, 0, 0, loc)
	d1Late := time.Date(2024, 5, 1, 22, 0, 0, 0, loc)
	d2 := time.Date(2024, 5, 2, 12, 0, 0, 0, loc)
	d3 := time.Date(2024, 5, 3, 12, 0, 0, 0, loc)

	series := BuildDailySeries(
		[]ledger.DatedValue{{Date: d3, Value: dec(5)}, {Date: d1, Value: dec(100)}, {Date: d1Late, Value: dec(20)}},
		[]ledger.DatedValue{{Date: d1, Value: dec(40)}, {Date: d2, Value: dec(7)}},
		loc,
	)

	require.Len(t, series, 3)
	assert.Equal(t, "2024-05-01", series[0].Date)
	assert.True(t, series[0].Income.Equal(dec(120)))
	assert.True(t, series[0].Spend.Equal(dec(40)))

	assert.Equal(t, "2024-05-02", series[1].Date)
	assert.True(t, series[1].Income.IsZero())
	assert.True(t, series[1].Spend.Equal(dec(7)))

	assert.Equal(t, "2024-05-03", series[2].Date)
	assert.True(t, series[2].Income.Equal(dec(5)))
	assert.True(t, series[2].Spend.IsZero())
}

func TestBuildDailySeries_BucketsInGivenLocation(t *testing.T) {
	plus2 := time.FixedZone("UTC+2", 2*60*60)
	// 23:30 UTC on April 30 is already May 1 at UTC+2
	late := time.Date(2024, 4, 30, 23, 30, 0, 0, time.UTC)

	series := BuildDailySeries([]ledger.DatedValue{{Date: late, Value: dec(1)}}, nil, plus2)

	require.Len(t, series, 1)
	assert.Equal(t, "2024-05-01", series[0].Date)
}

func TestBuildDailySeries_Empty(t *testing.T) {
	series := BuildDailySeries(nil, nil, nil)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestMergeRecent(t *testing.T) {
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	var incomes []ledger.Income
	var spends []ledger.Spend
	for i := 0; i < 7; i++ {
		in := ledger.Income{UserID: 1, Entry: ledger.Entry{Category: "in", Date: base.Add(-time.Duration(2*i) * time.Hour), Value: dec(1)}}
		in.ID = int64(i + 1)
		incomes = append(incomes, in)

		sp := ledger.Spend{UserID: 1, Entry: ledger.Entry{Category: "out", Date: base.Add(-time.Duration(2*i+1) * time.Hour), Value: dec(1)}}
		sp.ID = int64(100 + i)
		spends = append(spends, sp)
	}

	merged := MergeRecent(incomes, spends, RecentLimit)

	require.Len(t, merged, 10)
	var nIncome, nSpend int
	for i, tx := range merged {
		if tx.Kind == ledger.KindIncome {
			nIncome++
		} else {
			nSpend++
		}
		if i > 0 {
			assert.False(t, tx.Entry.Date.After(merged[i-1].Entry.Date), "merged feed must be date-desc")
		}
	}
	assert.Equal(t, 5, nIncome)
	assert.Equal(t, 5, nSpend)
	assert.Equal(t, ledger.KindIncome, merged[0].Kind)
	assert.Equal(t, ledger.KindSpend, merged[1].Kind)
}

func TestMergeRecent_IncomeFirstOnTies(t *testing.T) {
	at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	in := ledger.Income{UserID: 1, Entry: ledger.Entry{Date: at}}
	in.ID = 1
	sp := ledger.Spend{UserID: 1, Entry: ledger.Entry{Date: at}, StatusSpend: "paid"}
	sp.ID = 2

	merged := MergeRecent([]ledger.Income{in}, []ledger.Spend{sp}, RecentLimit)

	require.Len(t, merged, 2)
	assert.Equal(t, ledger.KindIncome, merged[0].Kind)
	assert.Equal(t, ledger.KindSpend, merged[1].Kind)
	assert.Equal(t, "paid", merged[1].StatusSpend)
}

func TestMergeRecent_Empty(t *testing.T) {
	merged := MergeRecent(nil, nil, RecentLimit)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
