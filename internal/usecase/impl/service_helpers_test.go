package impl

import (
	"io"
	"log/slog"
	"time"

	"alertacordon/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAlertTestConfig(mode string) *config.Config {
	return &config.Config{
		Alerts: &config.AlertsConfig{
			Mode:           mode,
			MaxAttempts:    3,
			RetryDelay:     2 * time.Minute,
			PublishTimeout: time.Second,
		},
		Reports: &config.ReportsConfig{
			DefaultLimit:    10,
			MaxLimit:        100,
			MapWindowDays:   30,
			MaxNearbyRadius: 5000,
		},
	}
}
