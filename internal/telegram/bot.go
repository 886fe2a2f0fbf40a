package telegram

import (
	"context"
	"fruitstock-telegram-bot/internal/commands"
	"fruitstock-telegram-bot/internal/stock"
	"fruitstock-telegram-bot/internal/tracker"
	"fruitstock-telegram-bot/lib/helpers"
	"fruitstock-telegram-bot/lib/translation"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strings"
	"time"
)

const commandTimeout = 45 * time.Second

// NewBot creates new telegram bot
func NewBot(c BotConfig, source stock.Source, renderer *stock.Renderer) (*Bot, error) {
	var bot *tgbotapi.BotAPI
	var err error
	if c.APIEndpoint != "" {
		bot, err = tgbotapi.NewBotAPIWithClient(c.Token, c.APIEndpoint, &http.Client{Timeout: 30 * time.Second})
	} else {
		bot, err = tgbotapi.NewBotAPI(c.Token)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not create telegram bot")
	}

	bot.Debug = c.Debug

	return &Bot{
		Bot:      bot,
		Config:   c,
		source:   source,
		renderer: renderer,
	}, nil
}

// SetCooldownSource lets /stock show the countdowns of the running tracker.
func (b *Bot) SetCooldownSource(fn func() stock.Cooldowns) {
	b.cooldowns = fn
}

func (b *Bot) currentCooldowns() stock.Cooldowns {
	if b.cooldowns == nil {
		return nil
	}
	return b.cooldowns()
}

// GetUpdatesChannel gets new updates updates
func (b *Bot) GetUpdatesChannel() (tgbotapi.UpdatesChannel, error) {
	updatesConfig := tgbotapi.NewUpdate(0)
	if b.Config.UpdatesTimeout > 0 {
		updatesConfig.Timeout = b.Config.UpdatesTimeout
	}
	return b.Bot.GetUpdatesChan(updatesConfig), nil
}

// SendMessage posts a new MarkdownV2 message and returns its id.
func (b *Bot) SendMessage(chatID int64, text string) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	sent, err := b.Bot.Send(msg)
	if err != nil {
		return 0, errors.Wrapf(err, "could not send message to chat %d", chatID)
	}
	return sent.MessageID, nil
}

// EditMessage replaces the text of an existing message. A vanished message is
// reported as tracker.ErrMessageNotFound.
func (b *Bot) EditMessage(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.DisableWebPagePreview = true
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	_, err := b.Bot.Send(edit)
	return classifyEditError(err, messageID)
}

func classifyEditError(err error, messageID int) error {
	if err == nil {
		return nil
	}

	description := strings.ToLower(err.Error())
	switch {
	case strings.Contains(description, "message is not modified"):
		return nil
	case strings.Contains(description, "message to edit not found"),
		strings.Contains(description, "message not found"):
		return errors.Wrapf(tracker.ErrMessageNotFound, "message %d: %s", messageID, err.Error())
	}
	return errors.Wrapf(err, "could not edit message %d", messageID)
}

// Reply sends a command answer as a reply to the triggering message.
func (b *Bot) Reply(m Message) error {
	msg := tgbotapi.NewMessage(m.ChatID, m.Text)
	msg.ReplyToMessageID = m.MessageID
	msg.DisableWebPagePreview = true
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	_, err := b.Bot.Send(msg)
	return errors.Wrapf(err, "could not send message: %v", m)
}

// SendPhoto sends a PNG with a MarkdownV2 caption as a reply.
func (b *Bot) SendPhoto(chatID int64, replyTo int, data []byte, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  "chart.png",
		Bytes: data,
	})
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdownV2
	photo.ReplyToMessageID = replyTo
	_, err := b.Bot.Send(photo)
	return errors.Wrap(err, "could not send chart")
}

// HandleUpdate processes Telegram updates and returns the reply text.
// An empty string means the reply was already sent.
func (b *Bot) HandleUpdate(u tgbotapi.Update) string {
	text := translation.Translate("Command help message")
	log.Debugf("received command: %s", u.Message.Command())

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var err error

	switch u.Message.Command() {
	case "source":
		if b.Config.SourceURL != "" {
			text = helpers.EscapeMarkdownV2(b.Config.SourceURL)
		}
	case "stock":
		if text, err = commands.CommandStock(ctx, b.source, b.renderer, b.currentCooldowns()); err != nil {
			text = helpers.EscapeMarkdownV2(translation.Translate("Could not fetch stock data"))
			log.Error(err)
		}
	case "chart":
		chartData, caption, err := commands.CommandChart(ctx, b.source, b.renderer.Profile, u.Message.CommandArguments())
		if err != nil {
			text = helpers.EscapeMarkdownV2(translation.Translate("Could not build chart"))
			log.Error(err)
			break
		}
		if chartData == nil {
			text = caption
			break
		}
		if err := b.SendPhoto(u.Message.Chat.ID, u.Message.MessageID, chartData, caption); err != nil {
			log.Error("error sending chart:", err)
		}
		return ""
	}

	return text
}
