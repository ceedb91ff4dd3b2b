package bot

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"gitlab.com/andhika/duit-bot/internal/config"
	"gitlab.com/andhika/duit-bot/internal/models"
)

// memLedger is an in-memory Ledger for handler tests.
type memLedger struct {
	mu       sync.Mutex
	nextID   int64
	expenses []models.Expense

	// appendErr simulates storage failures. When appendErrDesc is set,
	// only appends with that description fail.
	appendErr     error
	appendErrDesc string
}

var _ Ledger = (*memLedger)(nil)

func newMemLedger() *memLedger {
	return &memLedger{nextID: 1}
}

func (m *memLedger) Append(_ context.Context, userID int64, description string, amount int64, now time.Time) (*models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.appendErr != nil && (m.appendErrDesc == "" || m.appendErrDesc == strings.TrimSpace(description)) {
		return nil, m.appendErr
	}

	e := models.Expense{
		ID:          m.nextID,
		UserID:      userID,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Description: strings.TrimSpace(description),
		Amount:      amount,
		CreatedAt:   now,
	}
	m.nextID++
	m.expenses = append(m.expenses, e)
	return &e, nil
}

func (m *memLedger) GetByDate(_ context.Context, userID int64, date time.Time) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Expense
	for _, e := range m.expenses {
		if e.UserID == userID &&
			e.Date.Year() == date.Year() && e.Date.Month() == date.Month() && e.Date.Day() == date.Day() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memLedger) GetByMonth(_ context.Context, userID int64, year int, month time.Month) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Expense
	for _, e := range m.expenses {
		if e.UserID == userID && e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memLedger) GetDailyTotals(ctx context.Context, userID int64, year int, month time.Month) ([]models.DailyTotal, error) {
	expenses, err := m.GetByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	byDay := make(map[int]int64)
	for _, e := range expenses {
		byDay[e.Date.Day()] += e.Amount
	}

	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	out := make([]models.DailyTotal, 0, len(days))
	for _, d := range days {
		out = append(out, models.DailyTotal{
			Date:  time.Date(year, month, d, 0, 0, 0, 0, time.UTC),
			Total: byDay[d],
		})
	}
	return out, nil
}

func (m *memLedger) DeleteMostRecent(_ context.Context, userID int64) (*models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.expenses) - 1; i >= 0; i-- {
		if m.expenses[i].UserID == userID {
			deleted := m.expenses[i]
			m.expenses = append(m.expenses[:i], m.expenses[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

// memUsers is an in-memory UserStore for handler tests.
type memUsers struct {
	mu    sync.Mutex
	users map[int64]models.User

	// withoutExpenses is returned by GetUsersWithoutExpenses.
	withoutExpenses []models.User
}

var _ UserStore = (*memUsers)(nil)

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[int64]models.User)}
}

func (m *memUsers) Upsert(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = *user
	return nil
}

func (m *memUsers) GetUsersWithoutExpenses(_ context.Context, _ time.Time) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.withoutExpenses, nil
}

// testNow is the fixed clock used by handler tests: 2025-12-05 10:00 WIB.
var testNow = time.Date(2025, time.December, 5, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))

// setupTestBot creates a Bot wired to in-memory stores and a fixed clock.
func setupTestBot(t *testing.T) (*Bot, *memLedger) {
	t.Helper()

	ledger := newMemLedger()
	b := &Bot{
		cfg: &config.Config{
			TelegramBotToken: "test-token",
			DatabaseURL:      "test-url",
			Timezone:         "Asia/Jakarta",
			ReminderHour:     20,
		},
		ledger: ledger,
		users:  newMemUsers(),
		agg:    NewAggregator(ledger),
		loc:    testNow.Location(),
		now:    func() time.Time { return testNow },
	}
	return b, ledger
}
