package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gitlab.com/andhika/duit-bot/internal/logger"
)

// routeFreeTextCore classifies a plain text message and dispatches it:
// temporal queries get a recap reply, everything else goes through the
// expense parser.
func (b *Bot) routeFreeTextCore(ctx context.Context, tg TelegramAPI, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	routed := Route(update.Message.Text)
	logger.Log.Debug().
		Int64("chat_id", chatID).
		Str("intent", routed.Intent.String()).
		Msg("Routed free text")

	switch routed.Intent {
	case IntentQueryToday:
		b.sendDaySummaryCore(ctx, tg, chatID, userID, b.now())
	case IntentQueryDate:
		b.replyDateQueryCore(ctx, tg, chatID, userID, routed.Token)
	case IntentQueryMonth:
		b.replyMonthQueryCore(ctx, tg, chatID, userID, routed.Token)
	case IntentRecordExpense:
		b.recordExpensesCore(ctx, tg, chatID, userID, routed.Entries)
	default:
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text: "🤔 Gue ga ngerti. Coba format: <code>bakso 15000</code> " +
				"atau <code>bakso 10rb, es teh 5k</code>. Ketik /help buat bantuan.",
			ParseMode: models.ParseModeHTML,
		})
	}
}

// recordExpensesCore appends the parsed entries to today's ledger and
// confirms with the updated daily total. A storage failure on any entry
// aborts the batch: the user gets the failure reply, never a confirmation
// that hides a lost entry.
func (b *Bot) recordExpensesCore(ctx context.Context, tg TelegramAPI, chatID, userID int64, entries []Entry) {
	now := b.now()

	for _, entry := range entries {
		if _, err := b.ledger.Append(ctx, userID, entry.Description, entry.Amount, now); err != nil {
			logger.Log.Error().
				Err(err).
				Str("description", entry.Description).
				Msg("Failed to append expense")
			b.sendStorageError(ctx, tg, chatID)
			return
		}
	}

	summary, err := b.agg.TotalsForDate(ctx, userID, now)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to aggregate after record")
		b.sendStorageError(ctx, tg, chatID)
		return
	}

	var sb strings.Builder
	sb.WriteString("✅ <b>Tercatat!</b>\n\n")
	for _, entry := range entries {
		fmt.Fprintf(&sb, "• %s: %s\n", escapeHTML(entry.Description), FormatRupiah(entry.Amount))
	}
	fmt.Fprintf(&sb, "\n📊 Total hari ini: <b>%s</b>", FormatRupiah(summary.Total))

	_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      sb.String(),
		ParseMode: models.ParseModeHTML,
	})
}
