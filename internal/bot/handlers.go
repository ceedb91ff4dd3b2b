package bot

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// handleStart handles the /start command.
func (b *Bot) handleStart(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.handleStartCore(ctx, tgBot, update)
}

func (b *Bot) handleStartCore(ctx context.Context, tg TelegramAPI, update *models.Update) {
	if update.Message == nil {
		return
	}

	firstName := ""
	if update.Message.From != nil {
		firstName = update.Message.From.FirstName
	}

	text := fmt.Sprintf(`👋 Halo%s!

Aku bot pencatat pengeluaran harian. Tulis aja pengeluaranmu, nanti aku catat.

<b>Contoh:</b>
• <code>bakso 15000</code>
• <code>bakso 10rb, es teh 5k</code>
• <code>gojek Rp 25.000</code>

Mau lihat rekap? Kirim <code>hari ini</code>, <code>tanggal 7</code>, atau <code>bulan 12</code>.

Ketik /help buat daftar perintah lengkap.`,
		formatGreeting(firstName))

	_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
}

// handleHelp handles the /help command.
func (b *Bot) handleHelp(ctx context.Context, tgBot *bot.Bot, update *models.Update) {
	b.handleHelpCore(ctx, tgBot, update)
}

func (b *Bot) handleHelpCore(ctx context.Context, tg TelegramAPI, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := `📚 <b>Daftar Perintah</b>

<b>Catat pengeluaran:</b>
• Kirim pesan seperti <code>bakso 15000</code>
• Beberapa sekaligus: <code>bakso 10rb, es teh 5k</code>

<b>Lihat rekap:</b>
• <code>hari ini</code> atau /today - pengeluaran hari ini
• <code>tanggal 7</code> atau /date 7 - pengeluaran tanggal tertentu
• <code>bulan 12</code> atau /month 12 - rekap bulanan
• /export [bulan] - unduh CSV bulanan
• /chart [bulan] - grafik pengeluaran bulanan

<b>Lainnya:</b>
• /undo - hapus catatan terakhir
• /help - tampilkan pesan ini`

	_, _ = tg.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
}

// formatGreeting returns a greeting suffix with the user's name.
func formatGreeting(firstName string) string {
	if firstName == "" {
		return ""
	}
	return " " + escapeHTML(firstName)
}
