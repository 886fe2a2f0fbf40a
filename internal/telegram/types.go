package telegram

import (
	"fruitstock-telegram-bot/internal/stock"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotConfig configuration of the bot
type BotConfig struct {
	Token          string
	Debug          bool
	UpdatesTimeout int
	// APIEndpoint overrides the Bot API endpoint, mostly for tests.
	APIEndpoint string
	// SourceURL is answered to /source; empty disables the command.
	SourceURL string
}

// Bot telegram interaction client
type Bot struct {
	Bot      *tgbotapi.BotAPI
	Config   BotConfig
	source    stock.Source
	renderer  *stock.Renderer
	cooldowns func() stock.Cooldowns
}

// Message a telegram message struct
type Message struct {
	ChatID    int64
	MessageID int
	Text      string
}
