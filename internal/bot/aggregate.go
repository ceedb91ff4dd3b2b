package bot

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/andhika/duit-bot/internal/models"
	"gitlab.com/andhika/duit-bot/internal/repository"
)

// Ledger is the expense storage surface the bot depends on. The Postgres
// repository is the production implementation; tests substitute an
// in-memory one.
type Ledger interface {
	Append(ctx context.Context, userID int64, description string, amount int64, now time.Time) (*models.Expense, error)
	GetByDate(ctx context.Context, userID int64, date time.Time) ([]models.Expense, error)
	GetByMonth(ctx context.Context, userID int64, year int, month time.Month) ([]models.Expense, error)
	GetDailyTotals(ctx context.Context, userID int64, year int, month time.Month) ([]models.DailyTotal, error)
	DeleteMostRecent(ctx context.Context, userID int64) (*models.Expense, error)
}

var _ Ledger = (*repository.ExpenseRepository)(nil)

// DaySummary is one day's entries and their sum.
type DaySummary struct {
	Date    time.Time
	Entries []models.Expense
	Total   int64
}

// MonthSummary is the per-day totals of one month plus the grand total.
// Days with no expenses are absent rather than zero.
type MonthSummary struct {
	Year  int
	Month time.Month
	Days  []models.DailyTotal
	Total int64
}

// Aggregator computes read-side summaries over a Ledger.
type Aggregator struct {
	ledger Ledger
}

func NewAggregator(ledger Ledger) *Aggregator {
	return &Aggregator{ledger: ledger}
}

// TotalsForDate returns every entry recorded on the given calendar date
// together with their sum.
func (a *Aggregator) TotalsForDate(ctx context.Context, userID int64, date time.Time) (*DaySummary, error) {
	entries, err := a.ledger.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses for date: %w", err)
	}

	var total int64
	for _, e := range entries {
		total += e.Amount
	}
	return &DaySummary{Date: date, Entries: entries, Total: total}, nil
}

// TotalsForMonth returns the per-day totals of a month and their grand
// total.
func (a *Aggregator) TotalsForMonth(ctx context.Context, userID int64, year int, month time.Month) (*MonthSummary, error) {
	days, err := a.ledger.GetDailyTotals(ctx, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily totals: %w", err)
	}

	var total int64
	for _, d := range days {
		total += d.Total
	}
	return &MonthSummary{Year: year, Month: month, Days: days, Total: total}, nil
}
