package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"gitlab.com/andhika/duit-bot/internal/database"
	"gitlab.com/andhika/duit-bot/internal/models"
)

// ExpenseRepository persists the expense ledger. Per-user appends and
// deletes are ordered by the BIGSERIAL id, so "most recent" is the highest
// id for that user.
type ExpenseRepository struct {
	db database.PGXDB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db database.PGXDB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Append records one expense for the user. The expense date is derived from
// now's calendar day; callers pass now in the bot's display timezone.
func (r *ExpenseRepository) Append(ctx context.Context, userID int64, description string, amount int64, now time.Time) (*models.Expense, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d", amount)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.New("description must not be empty")
	}

	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	exp := &models.Expense{
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO expenses (user_id, date, description, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, userID, date, description, amount, now).Scan(&exp.ID, &exp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to append expense: %w", err)
	}
	return exp, nil
}

// GetByDate retrieves the user's expenses on one calendar date, ascending
// by creation time.
func (r *ExpenseRepository) GetByDate(ctx context.Context, userID int64, date time.Time) ([]models.Expense, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, description, amount, created_at
		FROM expenses
		WHERE user_id = $1 AND date = $2
		ORDER BY created_at ASC, id ASC
	`, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by date: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// GetByMonth retrieves all of the user's expenses within a month, ascending
// by date and creation time. Used by the CSV export.
func (r *ExpenseRepository) GetByMonth(ctx context.Context, userID int64, year int, month time.Month) ([]models.Expense, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, description, amount, created_at
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC, created_at ASC, id ASC
	`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by month: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// GetDailyTotals returns the per-date sums for a month, ascending by date.
// Dates without expenses are absent, never reported as zero.
func (r *ExpenseRepository) GetDailyTotals(ctx context.Context, userID int64, year int, month time.Month) ([]models.DailyTotal, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := r.db.Query(ctx, `
		SELECT date, SUM(amount) AS total
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
		GROUP BY date
		ORDER BY date ASC
	`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily totals: %w", err)
	}
	defer rows.Close()

	var totals []models.DailyTotal
	for rows.Next() {
		var dt models.DailyTotal
		if err := rows.Scan(&dt.Date, &dt.Total); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		totals = append(totals, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily totals: %w", err)
	}
	return totals, nil
}

// DeleteMostRecent removes the user's most recently created expense and
// returns it. Returns (nil, nil) when the user has no expenses.
func (r *ExpenseRepository) DeleteMostRecent(ctx context.Context, userID int64) (*models.Expense, error) {
	var exp models.Expense
	err := r.db.QueryRow(ctx, `
		DELETE FROM expenses
		WHERE id = (
			SELECT id FROM expenses WHERE user_id = $1 ORDER BY id DESC LIMIT 1
		)
		RETURNING id, user_id, date, description, amount, created_at
	`, userID).Scan(&exp.ID, &exp.UserID, &exp.Date, &exp.Description, &exp.Amount, &exp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete most recent expense: %w", err)
	}
	return &exp, nil
}

// scanExpenses collects expense rows.
func scanExpenses(rows pgx.Rows) ([]models.Expense, error) {
	var expenses []models.Expense
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(&exp.ID, &exp.UserID, &exp.Date, &exp.Description, &exp.Amount, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}
