package service

import (
	"context"

	"alertacordon/internal/domain/entity"
)

// Alert is what a channel publishes: the report and its formatted status text.
type Alert struct {
	Report *entity.Report
	Status string
}

// AlertChannel is an external feed reports are republished to.
type AlertChannel interface {
	// Name identifies the channel in delivery rows, logs and metrics.
	Name() string

	// Publish posts the alert. Implementations must honour ctx cancellation.
	Publish(ctx context.Context, alert *Alert) error
}
