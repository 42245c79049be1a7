package alerting

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"alertacordon/config"
	"alertacordon/internal/domain/lifecycle"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/infra/notification"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

const defaultPublishTimeout = 10 * time.Second

// Params defines the dependencies for building alert channels
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewChannels builds every alert channel whose configuration is complete.
// Misconfigured channels are skipped with a warning so the service still
// accepts reports.
func NewChannels(params Params) []service.AlertChannel {
	cfg := params.Config
	logger := params.Logger

	timeout := defaultPublishTimeout
	if cfg.Alerts != nil && cfg.Alerts.PublishTimeout > 0 {
		timeout = cfg.Alerts.PublishTimeout
	}

	var channels []service.AlertChannel

	if cfg.X.Complete() {
		channels = append(channels, NewXChannel(cfg.X, timeout))
	} else {
		logger.Warn("X credentials incomplete, skipping X channel")
	}

	if tg := cfg.Telegram; tg != nil && tg.Token != "" && tg.ChatID != 0 {
		bot, err := tgbotapi.NewBotAPIWithClient(tg.Token, tgbotapi.APIEndpoint, &http.Client{Timeout: timeout})
		if err != nil {
			logger.Warn("Telegram bot unavailable, skipping Telegram channel", slog.Any("error", err))
		} else {
			channels = append(channels, NewTelegramChannel(bot, tg.ChatID))
		}
	} else {
		logger.Info("Telegram not configured, skipping Telegram channel")
	}

	if fb := cfg.Firebase; fb != nil && fb.Topic != "" && (fb.CredentialsPath != "" || fb.ProjectID != "") {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		notifier, err := notification.NewFirebaseService(ctx, fb.ProjectID, fb.CredentialsPath)
		cancel()
		if err != nil {
			logger.Warn("Firebase unavailable, skipping Firebase channel", slog.Any("error", err))
		} else {
			channels = append(channels, NewFirebaseChannel(notifier, fb.Topic))
		}
	} else {
		logger.Info("Firebase not configured, skipping Firebase channel")
	}

	names := make([]string, 0, len(channels))
	for _, ch := range channels {
		names = append(names, ch.Name())
	}
	logger.Info("Alert channels ready", slog.Any("channels", names))

	return channels
}
