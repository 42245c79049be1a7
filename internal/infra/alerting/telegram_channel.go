package alerting

import (
	"context"
	"fmt"

	"alertacordon/internal/domain/constants"
	"alertacordon/internal/domain/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the slice of tgbotapi.BotAPI the channel needs.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramChannel posts alerts to a group or channel chat.
type TelegramChannel struct {
	bot    sender
	chatID int64
}

// NewTelegramChannel creates a channel posting to chatID through bot.
func NewTelegramChannel(bot sender, chatID int64) *TelegramChannel {
	return &TelegramChannel{bot: bot, chatID: chatID}
}

func (c *TelegramChannel) Name() string { return constants.ChannelTelegram }

// Publish sends the status text as a plain message. The bot API client has no
// context support, so cancellation is only checked before sending; its HTTP
// client carries the timeout.
func (c *TelegramChannel) Publish(ctx context.Context, alert *service.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(c.chatID, alert.Status)
	msg.DisableWebPagePreview = true

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}

	return nil
}
