package bot

import (
	"context"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"

	"gitlab.com/andhika/duit-bot/internal/logger"
)

const (
	// ReminderCheckInterval is how often the reminder loop checks whether to send reminders.
	ReminderCheckInterval = 30 * time.Minute
	// ReminderTimeout is the maximum time a single reminder check can take.
	ReminderTimeout = 2 * time.Minute
)

// startDailyReminderLoop runs a periodic loop that nudges users who
// haven't recorded any expenses for the current day.
func (b *Bot) startDailyReminderLoop(ctx context.Context) {
	if !b.cfg.DailyReminderEnabled {
		logger.Log.Info().Msg("Daily reminder is disabled")
		return
	}

	logger.Log.Info().
		Int("hour", b.cfg.ReminderHour).
		Str("timezone", b.cfg.Timezone).
		Msg("Daily reminder loop started")

	reminded := make(map[int64]string)
	ticker := time.NewTicker(ReminderCheckInterval)
	defer ticker.Stop()

	// Run one check immediately so reminders aren't skipped when the process
	// starts during the configured reminder hour.
	b.checkAndSendReminders(ctx, reminded, b.now())

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info().Msg("Daily reminder loop stopped")
			return
		case <-ticker.C:
			b.checkAndSendReminders(ctx, reminded, b.now())
		}
	}
}

// checkAndSendReminders checks the current hour and sends reminders to users
// who haven't recorded expenses today. The reminded map tracks which users
// have already been reminded today to avoid duplicate notifications.
func (b *Bot) checkAndSendReminders(ctx context.Context, reminded map[int64]string, now time.Time) {
	if now.Hour() != b.cfg.ReminderHour {
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, ReminderTimeout)
	defer cancel()

	todayStr := now.Format("2006-01-02")

	// Prune entries from previous days so the map doesn't grow unbounded.
	for uid, dateStr := range reminded {
		if dateStr != todayStr {
			delete(reminded, uid)
		}
	}

	users, err := b.users.GetUsersWithoutExpenses(checkCtx, now)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to fetch users for daily reminder")
		return
	}

	for _, user := range users {
		if reminded[user.ID] == todayStr {
			continue
		}

		firstName := user.FirstName
		if firstName == "" {
			firstName = "kamu"
		}

		text := fmt.Sprintf(
			"Halo %s! Hari ini belum ada pengeluaran yang tercatat. Jangan lupa catat ya.\n\nKirim pesan seperti 'bakso 15000' buat mulai.",
			firstName,
		)

		_, err = b.messageSender.SendMessage(checkCtx, &tgbot.SendMessageParams{
			ChatID: user.ID,
			Text:   text,
		})
		if err != nil {
			logger.Log.Warn().Err(err).Int64("user_id", user.ID).Msg("Failed to send daily reminder")
			continue
		}

		reminded[user.ID] = todayStr
		logger.Log.Debug().Int64("user_id", user.ID).Msg("Sent daily reminder")
	}
}
