package bot

import (
	tgbot "github.com/go-telegram/bot"

	"gitlab.com/andhika/duit-bot/internal/bot/mocks"
)

// TelegramAPI is an alias to the interface defined in mocks package.
// This allows handlers to accept either a real bot or a mock for testing.
type TelegramAPI = mocks.TelegramAPI

// Compile-time check that the real Telegram bot implements TelegramAPI.
var _ TelegramAPI = (*tgbot.Bot)(nil)
