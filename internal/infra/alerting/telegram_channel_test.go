package alerting

import (
	"context"
	"errors"
	"testing"

	"alertacordon/internal/domain/constants"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}

	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func TestTelegramChannelPublish(t *testing.T) {
	bot := &fakeSender{}
	ch := NewTelegramChannel(bot, -100123)

	require.NoError(t, ch.Publish(context.Background(), testAlert()))
	require.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100123), msg.ChatID)
	assert.Equal(t, testAlert().Status, msg.Text)
	assert.True(t, msg.DisableWebPagePreview)
	assert.Equal(t, constants.ChannelTelegram, ch.Name())
}

func TestTelegramChannelSendError(t *testing.T) {
	bot := &fakeSender{err: errors.New("Bad Request: chat not found")}

	err := NewTelegramChannel(bot, 1).Publish(context.Background(), testAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegramChannelCancelledContext(t *testing.T) {
	bot := &fakeSender{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTelegramChannel(bot, 1).Publish(ctx, testAlert())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, bot.sent)
}
