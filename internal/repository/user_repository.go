package repository

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/andhika/duit-bot/internal/database"
	"gitlab.com/andhika/duit-bot/internal/models"
)

// UserRepository records the chat participants the bot has seen. It backs
// the daily reminder; it is not an access-control list.
type UserRepository struct {
	db database.PGXDB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db database.PGXDB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates or updates a user.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, first_name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			updated_at = NOW()
	`, user.ID, user.Username, user.FirstName)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetUsersWithoutExpenses returns users that have no expense rows on the
// given calendar date.
func (r *UserRepository) GetUsersWithoutExpenses(ctx context.Context, date time.Time) ([]models.User, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.username, u.first_name, u.created_at, u.updated_at
		FROM users u
		WHERE NOT EXISTS (
			SELECT 1 FROM expenses e WHERE e.user_id = u.id AND e.date = $1
		)
		ORDER BY u.id
	`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query users without expenses: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
