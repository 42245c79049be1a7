package impl

import (
	"context"
	"log/slog"
	"time"

	"alertacordon/config"
	deliverycontext "alertacordon/internal/delivery/context"
	"alertacordon/internal/domain/alert"
	"alertacordon/internal/domain/entity"
	domainerrors "alertacordon/internal/domain/errors"
	"alertacordon/internal/domain/repository"
	"alertacordon/internal/domain/service"
	"alertacordon/internal/errors"
	"alertacordon/internal/infra/observability"
	"alertacordon/internal/usecase"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxAttempts    = 5
	defaultRetryDelay     = 2 * time.Minute
	defaultPublishTimeout = 10 * time.Second

	hiddenReportReason = "report hidden"
)

type alertService struct {
	reportRepo   repository.ReportRepository
	deliveryRepo repository.DeliveryRepository
	channels     []service.AlertChannel
	clock        clockwork.Clock
	metrics      *observability.Metrics
	logger       *slog.Logger

	maxAttempts    int
	retryDelay     time.Duration
	publishTimeout time.Duration
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	ReportRepo   repository.ReportRepository
	DeliveryRepo repository.DeliveryRepository
	Channels     []service.AlertChannel `group:"alert_channels"`
	Clock        clockwork.Clock
	Config       *config.Config
	Metrics      *observability.Metrics
	Logger       *slog.Logger
}

// NewAlertService creates the alert dispatch use case.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	srv := &alertService{
		reportRepo:     params.ReportRepo,
		deliveryRepo:   params.DeliveryRepo,
		clock:          params.Clock,
		metrics:        params.Metrics,
		logger:         params.Logger,
		maxAttempts:    defaultMaxAttempts,
		retryDelay:     defaultRetryDelay,
		publishTimeout: defaultPublishTimeout,
	}

	for _, ch := range params.Channels {
		if ch != nil {
			srv.channels = append(srv.channels, ch)
		}
	}

	if params.Config != nil && params.Config.Alerts != nil {
		cfg := params.Config.Alerts
		if cfg.MaxAttempts > 0 {
			srv.maxAttempts = cfg.MaxAttempts
		}
		if cfg.RetryDelay > 0 {
			srv.retryDelay = cfg.RetryDelay
		}
		if cfg.PublishTimeout > 0 {
			srv.publishTimeout = cfg.PublishTimeout
		}
	}

	return srv
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *alertService) EnabledChannels() []string {
	names := make([]string, 0, len(srv.channels))
	for _, ch := range srv.channels {
		names = append(names, ch.Name())
	}

	return names
}

type dispatchTarget struct {
	channel  service.AlertChannel
	delivery *entity.Delivery
	err      error
}

// DispatchReport publishes the report to every enabled channel it has not been
// delivered to yet. Channels run concurrently; outcomes are saved afterwards.
func (srv *alertService) DispatchReport(ctx context.Context, reportID int64) (*usecase.DispatchResult, error) {
	return srv.dispatch(ctx, reportID, nil)
}

// dispatch publishes the report. A non-nil only restricts the run to the named
// channels; other channels keep their rows untouched.
func (srv *alertService) dispatch(ctx context.Context, reportID int64, only map[string]bool) (*usecase.DispatchResult, error) {
	result := &usecase.DispatchResult{
		ReportID:  reportID,
		Delivered: []string{},
		Failed:    []string{},
		Skipped:   []string{},
	}

	report, err := srv.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, domainerrors.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to load report")
	}
	if report.Hidden {
		srv.log(ctx).Info("Skipping dispatch of hidden report", slog.Int64("reportID", reportID))

		return result, srv.abandonDeliveries(ctx, reportID)
	}

	targets, err := srv.prepareTargets(ctx, report, result, only)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return result, nil
	}

	status := alert.Format(alert.SummaryOf(report))
	payload := &service.Alert{Report: report, Status: status}

	var g errgroup.Group
	for _, target := range targets {
		g.Go(func() error {
			publishCtx, cancel := context.WithTimeout(ctx, srv.publishTimeout)
			defer cancel()

			target.err = target.channel.Publish(publishCtx, payload)

			return nil
		})
	}
	_ = g.Wait()

	now := srv.clock.Now()
	var saveErrs []error
	for _, target := range targets {
		name := target.channel.Name()
		if target.err != nil {
			target.delivery.MarkFailed(now, target.err)
			result.Failed = append(result.Failed, name)
			srv.metrics.Deliveries.WithLabelValues(name, "failed").Inc()
			srv.log(ctx).Warn("Alert channel publish failed",
				slog.Int64("reportID", reportID),
				slog.String("channel", name),
				slog.Int("attempts", target.delivery.Attempts),
				slog.Any("error", target.err),
			)
		} else {
			target.delivery.MarkDelivered(now)
			result.Delivered = append(result.Delivered, name)
			srv.metrics.Deliveries.WithLabelValues(name, "delivered").Inc()
			srv.log(ctx).Info("Alert published", slog.Int64("reportID", reportID), slog.String("channel", name))
		}

		if err := srv.deliveryRepo.UpdateDelivery(ctx, target.delivery); err != nil {
			saveErrs = append(saveErrs, errors.Wrapf(err, "failed to save %s delivery", name))
		}
	}

	if err := errors.Join(saveErrs...); err != nil {
		return result, err
	}

	return result, nil
}

// prepareTargets pairs enabled channels with their delivery rows, creating the
// rows that are missing and skipping channels already delivered.
func (srv *alertService) prepareTargets(ctx context.Context, report *entity.Report, result *usecase.DispatchResult, only map[string]bool) ([]*dispatchTarget, error) {
	existing, err := srv.deliveryRepo.FindDeliveriesByReport(ctx, report.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load deliveries")
	}

	byChannel := make(map[string]*entity.Delivery, len(existing))
	for _, d := range existing {
		byChannel[d.Channel] = d
	}

	now := srv.clock.Now()
	var (
		targets []*dispatchTarget
		missing []*entity.Delivery
	)
	for _, ch := range srv.channels {
		if only != nil && !only[ch.Name()] {
			continue
		}
		d, ok := byChannel[ch.Name()]
		if !ok {
			d = &entity.Delivery{
				ReportID:  report.ID,
				Channel:   ch.Name(),
				Status:    entity.DeliveryStatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			}
			missing = append(missing, d)
		}
		if d.Status == entity.DeliveryStatusDelivered {
			result.Skipped = append(result.Skipped, ch.Name())

			continue
		}
		targets = append(targets, &dispatchTarget{channel: ch, delivery: d})
	}

	if len(missing) > 0 {
		if err := srv.deliveryRepo.CreateDeliveries(ctx, missing); err != nil {
			return nil, errors.Wrap(err, "failed to create missing deliveries")
		}
	}

	return targets, nil
}

// abandonDeliveries closes the unfinished rows of a hidden report so they stop
// showing up as pending work. Attempts are left as they were.
func (srv *alertService) abandonDeliveries(ctx context.Context, reportID int64) error {
	existing, err := srv.deliveryRepo.FindDeliveriesByReport(ctx, reportID)
	if err != nil {
		return errors.Wrap(err, "failed to load deliveries")
	}

	now := srv.clock.Now()
	var errs []error
	for _, d := range existing {
		if d.Status == entity.DeliveryStatusDelivered ||
			(d.Status == entity.DeliveryStatusFailed && d.LastError == hiddenReportReason) {
			continue
		}

		d.Abandon(now, hiddenReportReason)
		if err := srv.deliveryRepo.UpdateDelivery(ctx, d); err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to close %s delivery", d.Channel))
		}
	}

	return errors.Join(errs...)
}

// RetryFailedDeliveries re-dispatches reports whose deliveries to enabled
// channels are still pending or failed after the retry delay.
func (srv *alertService) RetryFailedDeliveries(ctx context.Context) (int, error) {
	enabled := make(map[string]bool, len(srv.channels))
	for _, ch := range srv.channels {
		enabled[ch.Name()] = true
	}
	if len(enabled) == 0 {
		return 0, nil
	}

	cutoff := srv.clock.Now().Add(-srv.retryDelay)
	rows, err := srv.deliveryRepo.FindRetryableDeliveries(ctx, srv.maxAttempts, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find retryable deliveries")
	}

	// Only the channels returned here are under the attempt cap.
	due := make(map[int64]map[string]bool)
	var reportIDs []int64
	for _, row := range rows {
		if !enabled[row.Channel] {
			continue
		}
		if due[row.ReportID] == nil {
			due[row.ReportID] = make(map[string]bool)
			reportIDs = append(reportIDs, row.ReportID)
		}
		due[row.ReportID][row.Channel] = true
	}

	var errs []error
	retried := 0
	for _, id := range reportIDs {
		if _, err := srv.dispatch(ctx, id, due[id]); err != nil {
			errs = append(errs, errors.Wrapf(err, "report %d", id))

			continue
		}
		retried++
	}

	if len(reportIDs) > 0 {
		srv.log(ctx).Info("Retried alert deliveries", slog.Int("reports", len(reportIDs)), slog.Int("succeeded", retried))
	}

	return retried, errors.Join(errs...)
}
