package report

import (
	"sort"
	"time"

	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day key used in daily series
const DateLayout = "2006-01-02"

// DailyPoint is the income and spend total of one calendar day
type DailyPoint struct {
	Date   string
	Income decimal.Decimal
	Spend  decimal.Decimal
}

// BuildDailySeries buckets both record sets by calendar day in loc.
// Every day present on either side appears once, the missing side is 0,
// and the series is ordered by date ascending.
func BuildDailySeries(incomes, spends []ledger.DatedValue, loc *time.Location) []DailyPoint {
	if loc == nil {
		loc = time.Local
	}
	byDay := make(map[string]*DailyPoint)
	point := func(t time.Time) *DailyPoint {
		key := t.In(loc).Format(DateLayout)
		p, ok := byDay[key]
		if !ok {
			p = &DailyPoint{Date: key, Income: decimal.Zero, Spend: decimal.Zero}
			byDay[key] = p
		}
		return p
	}

	for _, v := range incomes {
		p := point(v.Date)
		p.Income = p.Income.Add(v.Value)
	}
	for _, v := range spends {
		p := point(v.Date)
		p.Spend = p.Spend.Add(v.Value)
	}

	series := make([]DailyPoint, 0, len(byDay))
	for _, p := range byDay {
		series = append(series, *p)
	}
	// DateLayout sorts lexically in chronological order
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}
