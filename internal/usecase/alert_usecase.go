package usecase

import (
	"context"
)

// DispatchResult summarises one dispatch run of a report.
type DispatchResult struct {
	ReportID  int64    `json:"report_id"`
	Delivered []string `json:"delivered"`
	Failed    []string `json:"failed"`
	Skipped   []string `json:"skipped"` // Already delivered before this run
}

// AlertUsecase republishes reports to the configured alert channels.
type AlertUsecase interface {
	// EnabledChannels lists the names of configured channels.
	EnabledChannels() []string

	// DispatchReport publishes a report to every channel it was not yet delivered to.
	// Channel failures are recorded, not returned; the error is for load and save failures.
	DispatchReport(ctx context.Context, reportID int64) (*DispatchResult, error)

	// RetryFailedDeliveries re-dispatches reports with retryable deliveries, limited
	// to the channels still under the attempt cap, and
	// returns how many reports were retried.
	RetryFailedDeliveries(ctx context.Context) (int, error)
}
