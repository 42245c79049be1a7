// Package scheduler runs the periodic alert delivery retry job of the worker.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"alertacordon/config"
	"alertacordon/internal/domain/lifecycle"
	"alertacordon/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// RetryScheduler re-dispatches failed alert deliveries on a cron schedule.
type RetryScheduler struct {
	cron    *cron.Cron
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
	spec    string
}

// Params holds dependencies for the RetryScheduler
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	AlertUC usecase.AlertUsecase
}

// NewRetryScheduler registers the retry job and ties the cron runner to the fx lifecycle.
func NewRetryScheduler(params Params) (*RetryScheduler, error) {
	alertsCfg := params.Config.Alerts
	if alertsCfg == nil {
		return nil, errors.New("alerts config is required")
	}

	loc := time.UTC
	if alertsCfg.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(alertsCfg.Timezone)
		if err != nil {
			return nil, errors.Wrapf(err, "load timezone %q", alertsCfg.Timezone)
		}
	}

	cronLogger := slogCronLogger{logger: params.Logger}
	s := &RetryScheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		alertUC: params.AlertUC,
		logger:  params.Logger,
		spec:    alertsCfg.RetrySchedule,
	}

	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return nil, errors.Wrapf(err, "invalid retry schedule %q", s.spec)
	}

	params.Lc.Append(fx.Hook{
		OnStart: s.start,
		OnStop:  s.stop,
	})

	return s, nil
}

// RunOnce retries pending and failed deliveries and returns how many reports were re-dispatched.
func (s *RetryScheduler) RunOnce(ctx context.Context) (int, error) {
	retried, err := s.alertUC.RetryFailedDeliveries(ctx)
	if err != nil {
		return retried, errors.Wrap(err, "retry failed deliveries")
	}

	return retried, nil
}

func (s *RetryScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	retried, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error("[Scheduler] Delivery retry run failed", slog.Int("retried", retried), slog.Any("error", err))

		return
	}
	if retried > 0 {
		s.logger.Info("[Scheduler] Delivery retry run finished", slog.Int("retried", retried))
	}
}

func (s *RetryScheduler) start(context.Context) error {
	s.logger.Info("[Scheduler] Starting delivery retry scheduler", slog.String("schedule", s.spec))
	s.cron.Start()

	return nil
}

// stop waits for a running job to finish, bounded by ctx and lifecycle.DefaultTimeout.
func (s *RetryScheduler) stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[Scheduler] Stopping delivery retry scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "retry job still running")
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Scheduler] "+msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Scheduler] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
