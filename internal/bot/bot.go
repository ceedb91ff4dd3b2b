// Package bot provides the Telegram bot initialization and handlers.
package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
	"github.com/jackc/pgx/v5/pgxpool"

	"gitlab.com/andhika/duit-bot/internal/config"
	"gitlab.com/andhika/duit-bot/internal/logger"
	"gitlab.com/andhika/duit-bot/internal/models"
	"gitlab.com/andhika/duit-bot/internal/repository"
)

// UserStore is the user storage surface the bot depends on.
type UserStore interface {
	Upsert(ctx context.Context, user *models.User) error
	GetUsersWithoutExpenses(ctx context.Context, date time.Time) ([]models.User, error)
}

var _ UserStore = (*repository.UserRepository)(nil)

// Bot wraps the Telegram bot with application dependencies.
type Bot struct {
	bot    *bot.Bot
	cfg    *config.Config
	ledger Ledger
	users  UserStore
	agg    *Aggregator
	loc    *time.Location

	// now supplies the reference time for date resolution and recording.
	// Injected so tests can pin the clock.
	now func() time.Time

	// messageSender is used for bot-initiated messages (reminders).
	messageSender TelegramAPI
}

// New creates a new Bot instance.
func New(cfg *config.Config, pool *pgxpool.Pool) (*Bot, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	ledger := repository.NewExpenseRepository(pool)
	b := &Bot{
		cfg:    cfg,
		ledger: ledger,
		users:  repository.NewUserRepository(pool),
		agg:    NewAggregator(ledger),
		loc:    loc,
	}
	b.now = func() time.Time { return time.Now().In(b.loc) }

	opts := []bot.Option{
		bot.WithMiddlewares(b.userMiddleware),
		bot.WithDefaultHandler(b.defaultHandler),
	}

	telegramBot, err := bot.New(cfg.TelegramBotToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b.bot = telegramBot
	b.messageSender = telegramBot
	b.registerHandlers()

	return b, nil
}

// Start begins polling for updates and runs the daily reminder loop
// until the context is cancelled.
func (b *Bot) Start(ctx context.Context) {
	go b.startDailyReminderLoop(ctx)

	logger.Log.Info().Msg("Bot started polling")
	b.bot.Start(ctx)
}

// registerHandlers sets up command handlers.
func (b *Bot) registerHandlers() {
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, b.handleStart)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, b.handleHelp)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/today", bot.MatchTypePrefix, b.handleToday)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/date", bot.MatchTypePrefix, b.handleDate)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/month", bot.MatchTypePrefix, b.handleMonth)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/undo", bot.MatchTypePrefix, b.handleUndo)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/export", bot.MatchTypePrefix, b.handleExport)
	b.bot.RegisterHandler(bot.HandlerTypeMessageText, "/chart", bot.MatchTypePrefix, b.handleChart)
}

// userMiddleware logs the incoming update and upserts the sender so the
// reminder loop knows about them.
func (b *Bot) userMiddleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, tgBot *bot.Bot, update *tgmodels.Update) {
		if update.Message == nil || update.Message.From == nil {
			return
		}

		from := update.Message.From
		logger.Log.Info().
			Int64("user_id", from.ID).
			Str("username", from.Username).
			Int64("chat_id", update.Message.Chat.ID).
			Str("text", update.Message.Text).
			Msg("User input")

		if err := b.users.Upsert(ctx, &models.User{
			ID:        from.ID,
			Username:  from.Username,
			FirstName: from.FirstName,
		}); err != nil {
			logger.Log.Error().
				Int64("user_id", from.ID).
				Err(err).
				Msg("Failed to register user")
		}

		next(ctx, tgBot, update)
	}
}

// defaultHandler routes free text: it is either a temporal query or a
// batch of expenses to record.
func (b *Bot) defaultHandler(ctx context.Context, tgBot *bot.Bot, update *tgmodels.Update) {
	b.routeFreeTextCore(ctx, tgBot, update)
}
