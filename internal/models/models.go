// Package models defines the domain entities for the expense tracker.
package models

import "time"

// Expense is a single recorded spending item. Amounts are whole rupiah;
// there is no fractional unit. Rows are immutable once created, except for
// deletion of the most recent row per user via undo.
type Expense struct {
	ID          int64
	UserID      int64
	Date        time.Time
	Description string
	Amount      int64
	CreatedAt   time.Time
}

// DailyTotal is the summed spending of one calendar date within a month.
type DailyTotal struct {
	Date  time.Time
	Total int64
}

// User is a chat participant the bot has seen. It exists to drive the
// daily reminder, not to authorize anything.
type User struct {
	ID        int64
	Username  string
	FirstName string
	CreatedAt time.Time
	UpdatedAt time.Time
}
