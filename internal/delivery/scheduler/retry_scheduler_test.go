package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"alertacordon/config"
	mockUsecase "alertacordon/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newConfig(schedule, timezone string) *config.Config {
	return &config.Config{
		Alerts: &config.AlertsConfig{
			RetrySchedule: schedule,
			Timezone:      timezone,
		},
	}
}

func TestNewRetrySchedulerValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr string
	}{
		{name: "missing alerts config", cfg: &config.Config{}, wantErr: "alerts config is required"},
		{name: "bad timezone", cfg: newConfig("*/5 * * * *", "Mars/Olympus"), wantErr: "load timezone"},
		{name: "bad schedule", cfg: newConfig("every now and then", "America/Montevideo"), wantErr: "invalid retry schedule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRetryScheduler(Params{
				Lc:      fxtest.NewLifecycle(t),
				Config:  tt.cfg,
				Logger:  slog.New(slog.DiscardHandler),
				AlertUC: mockUsecase.NewMockAlertUsecase(t),
			})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunOnce(t *testing.T) {
	alertUC := mockUsecase.NewMockAlertUsecase(t)
	alertUC.EXPECT().RetryFailedDeliveries(mock.Anything).Return(2, nil).Once()
	alertUC.EXPECT().RetryFailedDeliveries(mock.Anything).Return(1, errors.New("report 9: db down")).Once()

	s, err := NewRetryScheduler(Params{
		Lc:      fxtest.NewLifecycle(t),
		Config:  newConfig("*/5 * * * *", ""),
		Logger:  slog.New(slog.DiscardHandler),
		AlertUC: alertUC,
	})
	require.NoError(t, err)

	retried, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, retried)

	retried, err = s.RunOnce(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, retried)
	assert.Contains(t, err.Error(), "db down")
}

func TestSchedulerRunsJobAndStops(t *testing.T) {
	ran := make(chan struct{}, 1)
	alertUC := mockUsecase.NewMockAlertUsecase(t)
	alertUC.EXPECT().RetryFailedDeliveries(mock.Anything).
		Run(func(context.Context) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return(0, nil)

	lc := fxtest.NewLifecycle(t)
	_, err := NewRetryScheduler(Params{
		Lc:      lc,
		Config:  newConfig("@every 1s", "UTC"),
		Logger:  slog.New(slog.DiscardHandler),
		AlertUC: alertUC,
	})
	require.NoError(t, err)

	lc.RequireStart()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("retry job did not run")
	}

	lc.RequireStop()
}
