package bot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"gitlab.com/andhika/duit-bot/internal/logger"
)

// handleExport handles the /export command, sending the month's expenses
// as a CSV document. Takes an optional month token like "/export 12-2025".
func (b *Bot) handleExport(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.handleExportCore(ctx, tgBot, update)
}

func (b *Bot) handleExportCore(ctx context.Context, tg TelegramAPI, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	token := extractCommandArgs(update.Message.Text, "/export")
	year, month, err := ResolveMonth(token, b.now())
	if err != nil {
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      "❌ Bulan tidak valid! Coba: <code>/export</code>, <code>/export 12</code>, atau <code>/export 12-2025</code>",
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	expenses, err := b.ledger.GetByMonth(ctx, userID, year, month)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to fetch expenses for export")
		b.sendStorageError(ctx, tg, chatID)
		return
	}

	if len(expenses) == 0 {
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   fmt.Sprintf("📊 Belum ada pengeluaran di bulan %s %d.", MonthName(month), year),
		})
		return
	}

	csvData, err := GenerateExpensesCSV(expenses)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to generate CSV")
		b.sendStorageError(ctx, tg, chatID)
		return
	}

	b.sendDocumentCore(ctx, tg, chatID,
		generateReportFilename(year, month),
		csvData,
		fmt.Sprintf("📄 Pengeluaran %s %d (%d catatan)", MonthName(month), year, len(expenses)),
	)
}

// handleChart handles the /chart command, sending a bar chart of the
// month's per-day totals. Takes an optional month token like "/chart 12".
func (b *Bot) handleChart(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.handleChartCore(ctx, tgBot, update)
}

func (b *Bot) handleChartCore(ctx context.Context, tg TelegramAPI, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	token := extractCommandArgs(update.Message.Text, "/chart")
	year, month, err := ResolveMonth(token, b.now())
	if err != nil {
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      "❌ Bulan tidak valid! Coba: <code>/chart</code>, <code>/chart 12</code>, atau <code>/chart 12-2025</code>",
			ParseMode: models.ParseModeHTML,
		})
		return
	}

	summary, err := b.agg.TotalsForMonth(ctx, userID, year, month)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to aggregate month for chart")
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

	chartData, err := GenerateMonthChart(summary.Days, year, month)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to generate chart")
		b.sendStorageError(ctx, tg, chatID)
		return
	}

	b.sendDocumentCore(ctx, tg, chatID,
		generateChartFilename(year, month),
		chartData,
		fmt.Sprintf("📈 Grafik pengeluaran %s %d. Total: %s", MonthName(month), year, FormatRupiah(summary.Total)),
	)
}

// sendDocumentCore uploads a generated file to the chat.
func (b *Bot) sendDocumentCore(ctx context.Context, tg TelegramAPI, chatID int64, filename string, data []byte, caption string) {
	_, err := tg.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:    chatID,
		Document:  &models.InputFileUpload{Filename: filename, Data: bytes.NewReader(data)},
		Caption:   caption,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		logger.Log.Error().Err(err).Str("filename", filename).Msg("Failed to send document")
		_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ Gagal mengirim file. Coba lagi ya.",
		})
	}
}
