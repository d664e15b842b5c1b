// Package report assembles the read-only summaries, dashboard and recent feed.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	appledger "github.com/finboard/backend/internal/application/ledger"
	"github.com/finboard/backend/internal/domain/ledger"
	"github.com/finboard/backend/internal/domain/report"
	"github.com/finboard/backend/internal/domain/shared"
	"github.com/finboard/backend/internal/infrastructure/logger"
)

const (
	reportIncomeSummary = "income_summary"
	reportSpendSummary  = "spend_summary"
	reportDashboard     = "dashboard"
	reportRecent        = "recent_transactions"
)

// Recorder observes report builds
type Recorder interface {
	RecordReport(ctx context.Context, report string, elapsed time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordReport(context.Context, string, time.Duration, error) {}

// Option configures a ReportService
type Option func(*ReportService)

// WithClock replaces time.Now, which decides what "today" is
func WithClock(now func() time.Time) Option {
	return func(s *ReportService) { s.now = now }
}

// WithLocation sets the zone used for calendar-day bucketing
func WithLocation(loc *time.Location) Option {
	return func(s *ReportService) { s.loc = loc }
}

// WithRecorder attaches report metrics
func WithRecorder(r Recorder) Option {
	return func(s *ReportService) { s.recorder = r }
}

// ReportService computes per-user summaries. It never writes.
type ReportService struct {
	incomes  ledger.IncomeRepository
	spends   ledger.SpendRepository
	users    ledger.UserRepository
	now      func() time.Time
	loc      *time.Location
	recorder Recorder
}

// queryGroup runs sub-queries concurrently. A panicking query fails the
// report instead of the process.
type queryGroup struct {
	*errgroup.Group
}

func newQueryGroup(ctx context.Context) (*queryGroup, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	return &queryGroup{Group: g}, gctx
}

func (g *queryGroup) Go(fn func() error) {
	g.Group.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("report query panicked: %v", r)
			}
		}()
		return fn()
	})
}

// NewReportService creates a ReportService bucketing days in time.Local
func NewReportService(
	incomes ledger.IncomeRepository,
	spends ledger.SpendRepository,
	users ledger.UserRepository,
	opts ...Option,
) *ReportService {
	s := &ReportService{
		incomes:  incomes,
		spends:   spends,
		users:    users,
		now:      time.Now,
		loc:      time.Local,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IncomeSummary totals the user's incomes and breaks them down by category
func (s *ReportService) IncomeSummary(ctx context.Context, userID int64) (resp *IncomeSummaryResponse, err error) {
	defer s.observe(ctx, reportIncomeSummary, userID, time.Now(), &err)

	var (
		total   decimal.Decimal
		byCat   []ledger.CategoryTotal
		records []ledger.Income
	)
	g, gctx := newQueryGroup(ctx)
	g.Go(func() (err error) {
		total, err = s.incomes.SumForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		byCat, err = s.incomes.SumByCategoryForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		records, err = s.incomes.FindAllForUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bar, pie := toCharts(report.SortByCategory(byCat))
	return &IncomeSummaryResponse{
		TotalIncome: total.InexactFloat64(),
		Bar:         bar,
		Pie:         pie,
		Spends:      appledger.ToIncomeResponses(records),
		InfoText:    report.InfoText,
	}, nil
}

// SpendSummary totals the user's spends and breaks them down by category
func (s *ReportService) SpendSummary(ctx context.Context, userID int64) (resp *SpendSummaryResponse, err error) {
	defer s.observe(ctx, reportSpendSummary, userID, time.Now(), &err)

	var (
		total   decimal.Decimal
		byCat   []ledger.CategoryTotal
		records []ledger.Spend
	)
	g, gctx := newQueryGroup(ctx)
	g.Go(func() (err error) {
		total, err = s.spends.SumForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		byCat, err = s.spends.SumByCategoryForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		records, err = s.spends.FindAllForUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bar, pie := toCharts(report.SortByCategory(byCat))
	return &SpendSummaryResponse{
		TotalSpend: total.InexactFloat64(),
		Bar:        bar,
		Pie:        pie,
		Spends:     appledger.ToSpendResponses(records),
		InfoText:   report.InfoText,
	}, nil
}

// Dashboard combines balances, today's totals, the income breakdown, the
// daily series and both record lists. Today is fixed once per call.
func (s *ReportService) Dashboard(ctx context.Context, userID int64) (resp *DashboardResponse, err error) {
	defer s.observe(ctx, reportDashboard, userID, time.Now(), &err)

	today := report.DayOf(s.now().In(s.loc))

	var (
		name                     string
		totalIncome, totalSpends decimal.Decimal
		dailyIncome, dailySpends decimal.Decimal
		byCat                    []ledger.CategoryTotal
		incomeDates, spendDates  []ledger.DatedValue
		incomes                  []ledger.Income
		spends                   []ledger.Spend
	)

	g, gctx := newQueryGroup(ctx)
	g.Go(func() error {
		user, err := s.users.FindByID(gctx, userID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		name = ledger.DisplayName(user)
		return nil
	})
	g.Go(func() (err error) {
		totalIncome, err = s.incomes.SumForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		totalSpends, err = s.spends.SumForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		dailyIncome, err = s.incomes.SumForUserBetween(gctx, userID, today.Start, today.End)
		return err
	})
	g.Go(func() (err error) {
		dailySpends, err = s.spends.SumForUserBetween(gctx, userID, today.Start, today.End)
		return err
	})
	g.Go(func() (err error) {
		byCat, err = s.incomes.SumByCategoryForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		incomeDates, err = s.incomes.DatedValuesForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		spendDates, err = s.spends.DatedValuesForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		incomes, err = s.incomes.FindAllForUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		spends, err = s.spends.FindAllForUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bar, pie := toCharts(report.SortByCategory(byCat))
	return &DashboardResponse{
		NameUser:    name,
		TotalIncome: totalIncome.InexactFloat64(),
		TotalSpends: totalSpends.InexactFloat64(),
		Balance:     report.Balance(totalIncome, totalSpends).InexactFloat64(),
		DailyIncome: dailyIncome.InexactFloat64(),
		DailySpends: dailySpends.InexactFloat64(),
		Bar:         bar,
		Pie:         pie,
		DailyData:   toDailyResponses(report.BuildDailySeries(incomeDates, spendDates, s.loc)),
		Spends:      appledger.ToSpendResponses(spends),
		Incomes:     appledger.ToIncomeResponses(incomes),
		InfoText:    report.InfoText,
	}, nil
}

// RecentTransactions returns the latest incomes and spends, at most
// report.RecentLimit of each, merged by date descending
func (s *ReportService) RecentTransactions(ctx context.Context, userID int64) (resp *RecentTransactionsResponse, err error) {
	defer s.observe(ctx, reportRecent, userID, time.Now(), &err)

	var (
		incomes []ledger.Income
		spends  []ledger.Spend
	)
	g, gctx := newQueryGroup(ctx)
	g.Go(func() (err error) {
		incomes, err = s.incomes.FindRecentForUser(gctx, userID, report.RecentLimit)
		return err
	})
	g.Go(func() (err error) {
		spends, err = s.spends.FindRecentForUser(gctx, userID, report.RecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &RecentTransactionsResponse{
		Transactions: toTransactionResponses(report.MergeRecent(incomes, spends, report.RecentLimit)),
		Incomes:      appledger.ToIncomeResponses(incomes),
		Spends:       appledger.ToSpendResponses(spends),
	}, nil
}

func (s *ReportService) observe(ctx context.Context, name string, userID int64, began time.Time, errp *error) {
	elapsed := time.Since(began)
	s.recorder.RecordReport(ctx, name, elapsed, *errp)
	if *errp != nil {
		logger.L(ctx).Warn("Report failed",
			zap.String("report", name),
			zap.Int64("user_id", userID),
			zap.Duration("elapsed", elapsed),
			zap.Error(*errp),
		)
		return
	}
	logger.L(ctx).Debug("Report built",
		zap.String("report", name),
		zap.Int64("user_id", userID),
		zap.Duration("elapsed", elapsed),
	)
}
