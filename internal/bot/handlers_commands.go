package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gitlab.com/andhika/duit-bot/internal/logger"
)

// extractCommandArgs strips the /command prefix (and optional @botname suffix)
// from a message and returns the remaining trimmed arguments.
func extractCommandArgs(text, command string) string {
	args := strings.TrimSpace(strings.TrimPrefix(text, command))
	if strings.HasPrefix(args, "@") {
		if spaceIdx := strings.Index(args, " "); spaceIdx != -1 {
			args = strings.TrimSpace(args[spaceIdx:])
		} else {
			args = ""
		}
	}
	return args
}

// handleToday handles the /today command.
func (b *Bot) handleToday(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.handleTodayCore(ctx, tgBot, update)
}

func (b *Bot) handleTodayCore(ctx context.Context, tg TelegramAPI, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	b.sendDaySummaryCore(ctx, tg, update.Message.Chat.ID, update.Message.From.ID, b.now())
}

// handleDate handles the /date command, e.g. "/date 7-12".
func (b *Bot) handleDate(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.handleDateCore(ctx, tgBot, update)
}

func (b *Bot) handleDateCore(ctx context.Context, tg TelegramAPI, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	token := extractCommandArgs(update.Message.Text, "/date")
	b.replyDateQueryCore(ctx, tg, update.Message.Chat.ID, update.Message.From.ID, token)
}

// handleMonth handles the /month command, e.g. "/month 12-2025".
func (b *Bot) handleMonth(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.handleMonthCore(ctx, tgBot, update)
}

func (b *Bot) handleMonthCore(ctx context.Context, tg TelegramAPI, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	token := extractCommandArgs(update.Message.Text, "/month")
	b.replyMonthQueryCore(ctx, tg, update.Message.Chat.ID, update.Message.From.ID, token)
}

// handleUndo handles the /undo command, removing the most recent entry.
func (b *Bot) handleUndo(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.handleUndoCore(ctx, tgBot, update)
}

func (b *Bot) handleUndoCore(ctx context.Context, tg TelegramAPI, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID

	deleted, err := b.ledger.DeleteMostRecent(ctx, update.Message.From.ID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to delete most recent expense")
		b.sendStorageError(ctx, tg, chatID)
		return
	}

	if deleted == nil {
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Tidak ada data untuk dihapus.",
		})
		return
	}

	_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("✅ Dihapus: %s (%s)",
			escapeHTML(deleted.Description), FormatRupiah(deleted.Amount)),
		ParseMode: models.ParseModeHTML,
	})
}

// replyDateQueryCore resolves a date token and replies with that day's
// summary, or an error message when the token doesn't name a real date.
func (b *Bot) replyDateQueryCore(ctx context.Context, tg TelegramAPI, chatID, userID int64, token string) {
	date, err := ResolveDate(token, b.now())
	if err != nil {
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text: "❌ Tanggal tidak valid! Coba format: <code>tanggal 7</code>, " +
				"<code>tanggal 7-12</code>, atau <code>tanggal 7-12-2025</code>",
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	b.sendDaySummaryCore(ctx, tg, chatID, userID, date)
}

// replyMonthQueryCore resolves a month token and replies with the monthly
// recap of per-day totals.
func (b *Bot) replyMonthQueryCore(ctx context.Context, tg TelegramAPI, chatID, userID int64, token string) {
	year, month, err := ResolveMonth(token, b.now())
	if err != nil {
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text: "❌ Bulan tidak valid! Bulan harus antara 1-12. Coba format: " +
				"<code>bulan ini</code>, <code>bulan 12</code>, atau <code>bulan 12-2025</code>",
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	summary, err := b.agg.TotalsForMonth(ctx, userID, year, month)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to aggregate month")
		b.sendStorageError(ctx, tg, chatID)
		return
	}

	if len(summary.Days) == 0 {
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   fmt.Sprintf("📊 Belum ada pengeluaran di bulan %s %d.", MonthName(month), year),
		})
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 <b>Pengeluaran %s %d</b>\n\n", MonthName(month), year)
	for _, d := range summary.Days {
		fmt.Fprintf(&sb, "• Tanggal %d: %s\n", d.Date.Day(), FormatRupiah(d.Total))
	}
	fmt.Fprintf(&sb, "\n<b>Total: %s</b>", FormatRupiah(summary.Total))

	_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      sb.String(),
		ParseMode: models.ParseModeHTML,
	})
}

// sendDaySummaryCore replies with every entry recorded on the given date
// and their total.
func (b *Bot) sendDaySummaryCore(ctx context.Context, tg TelegramAPI, chatID, userID int64, date time.Time) {
	summary, err := b.agg.TotalsForDate(ctx, userID, date)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to aggregate date")
		b.sendStorageError(ctx, tg, chatID)
		return
	}

	today := b.now()
	isToday := date.Year() == today.Year() && date.Month() == today.Month() && date.Day() == today.Day()

	if len(summary.Entries) == 0 {
		text := fmt.Sprintf("📊 Belum ada pengeluaran di tanggal %s.", FormatDateID(date))
		if isToday {
			text = "📊 Belum ada pengeluaran hari ini. Mulai catat yuk!"
		}
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   text,
		})
		return
	}

	var sb strings.Builder
	if isToday {
		sb.WriteString("📊 <b>Pengeluaran hari ini</b>\n\n")
	} else {
		fmt.Fprintf(&sb, "📊 <b>Pengeluaran %s</b>\n\n", FormatDateID(date))
	}
	for _, e := range summary.Entries {
		fmt.Fprintf(&sb, "• %s: %s\n", escapeHTML(e.Description), FormatRupiah(e.Amount))
	}
	fmt.Fprintf(&sb, "\n<b>Total: %s</b>", FormatRupiah(summary.Total))

	_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      sb.String(),
		ParseMode: models.ParseModeHTML,
	})
}

// sendStorageError tells the user a storage operation failed.
func (b *Bot) sendStorageError(ctx context.Context, tg TelegramAPI, chatID int64) {
	_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "❌ Terjadi kesalahan. Coba lagi ya.",
	})
}
