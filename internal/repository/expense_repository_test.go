package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gitlab.com/andhika/duit-bot/internal/database"
)

var repoTestNow = time.Date(2025, time.December, 5, 10, 0, 0, 0, time.UTC)

func TestExpenseRepositoryAppend(t *testing.T) {
	t.Parallel()

	repo := NewExpenseRepository(database.TestTx(t))
	ctx := context.Background()

	exp, err := repo.Append(ctx, 42, "bakso", 15000, repoTestNow)
	require.NoError(t, err)
	require.NotZero(t, exp.ID)
	require.Equal(t, int64(42), exp.UserID)
	require.Equal(t, "bakso", exp.Description)
	require.Equal(t, int64(15000), exp.Amount)
	require.Equal(t, 2025, exp.Date.Year())
	require.Equal(t, time.December, exp.Date.Month())
	require.Equal(t, 5, exp.Date.Day())
}

func TestExpenseRepositoryAppendValidation(t *testing.T) {
	t.Parallel()

	repo := NewExpenseRepository(database.TestTx(t))
	ctx := context.Background()

	_, err := repo.Append(ctx, 42, "bakso", 0, repoTestNow)
	require.Error(t, err)

	_, err = repo.Append(ctx, 42, "bakso", -5, repoTestNow)
	require.Error(t, err)

	_, err = repo.Append(ctx, 42, "   ", 1000, repoTestNow)
	require.Error(t, err)
}

func TestExpenseRepositoryGetByDate(t *testing.T) {
	t.Parallel()

	repo := NewExpenseRepository(database.TestTx(t))
	ctx := context.Background()

	_, err := repo.Append(ctx, 42, "bakso", 10000, repoTestNow)
	require.NoError(t, err)
	_, err = repo.Append(ctx, 42, "es teh", 5000, repoTestNow)
	require.NoError(t, err)
	_, err = repo.Append(ctx, 42, "kemarin", 7000, repoTestNow.AddDate(0, 0, -1))
	require.NoError(t, err)
	_, err = repo.Append(ctx, 99, "orang lain", 3000, repoTestNow)
	require.NoError(t, err)

	expenses, err := repo.GetByDate(ctx, 42, repoTestNow)
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	// Insertion order is preserved.
	require.Equal(t, "bakso", expenses[0].Description)
	require.Equal(t, "es teh", expenses[1].Description)
}

func TestExpenseRepositoryGetByMonth(t *testing.T) {
	t.Parallel()

	repo := NewExpenseRepository(database.TestTx(t))
	ctx := context.Background()

	_, err := repo.Append(ctx, 42, "awal bulan", 10000, time.Date(2025, time.December, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = repo.Append(ctx, 42, "akhir bulan", 5000, time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = repo.Append(ctx, 42, "bulan lalu", 7000, time.Date(2025, time.November, 30, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = repo.Append(ctx, 42, "bulan depan", 9000, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	expenses, err := repo.GetByMonth(ctx, 42, 2025, time.December)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	require.Equal(t, "awal bulan", expenses[0].Description)
	require.Equal(t, "akhir bulan", expenses[1].Description)
}

func TestExpenseRepositoryGetDailyTotals(t *testing.T) {
	t.Parallel()

	repo := NewExpenseRepository(database.TestTx(t))
	ctx := context.Background()

	day3 := time.Date(2025, time.December, 3, 9, 0, 0, 0, time.UTC)
	day7 := time.Date(2025, time.December, 7, 9, 0, 0, 0, time.UTC)

	_, err := repo.Append(ctx, 42, "bakso", 10000, day3)
	require.NoError(t, err)
	_, err = repo.Append(ctx, 42, "es teh", 5000, day3)
	require.NoError(t, err)
	_, err = repo.Append(ctx, 42, "gojek", 25000, day7)
	require.NoError(t, err)

	totals, err := repo.GetDailyTotals(ctx, 42, 2025, time.December)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	require.Equal(t, 3, totals[0].Date.Day())
	require.Equal(t, int64(15000), totals[0].Total)
	require.Equal(t, 7, totals[1].Date.Day())
	require.Equal(t, int64(25000), totals[1].Total)
}

func TestExpenseRepositoryDeleteMostRecent(t *testing.T) {
	t.Parallel()

	repo := NewExpenseRepository(database.TestTx(t))
	ctx := context.Background()

	_, err := repo.Append(ctx, 42, "bakso", 10000, repoTestNow)
	require.NoError(t, err)
	_, err = repo.Append(ctx, 42, "es teh", 5000, repoTestNow)
	require.NoError(t, err)
	_, err = repo.Append(ctx, 99, "orang lain", 3000, repoTestNow)
	require.NoError(t, err)

	deleted, err := repo.DeleteMostRecent(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, "es teh", deleted.Description)

	remaining, err := repo.GetByDate(ctx, 42, repoTestNow)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "bakso", remaining[0].Description)

	// Other users' expenses are untouched.
	other, err := repo.GetByDate(ctx, 99, repoTestNow)
	require.NoError(t, err)
	require.Len(t, other, 1)
}

func TestExpenseRepositoryDeleteMostRecentEmpty(t *testing.T) {
	t.Parallel()

	repo := NewExpenseRepository(database.TestTx(t))

	deleted, err := repo.DeleteMostRecent(context.Background(), 42)
	require.NoError(t, err)
	require.Nil(t, deleted)
}
