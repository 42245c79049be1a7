package service

import (
	"context"
	"time"
)

// ReportCreatedEvent announces a stored report to the alert worker.
type ReportCreatedEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	ReportID  int64     `json:"report_id"`
	Category  string    `json:"category"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReportCreated hands the event to the queue for async alert dispatch.
	PublishReportCreated(ctx context.Context, event *ReportCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
