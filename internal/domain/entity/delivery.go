package entity

import "time"

// DeliveryStatus is the outcome of publishing a report to one alert channel.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// Delivery tracks one (report, channel) pair so failed posts can be retried
// without reposting to channels that already succeeded.
type Delivery struct {
	ID          int64
	ReportID    int64
	Channel     string
	Status      DeliveryStatus
	Attempts    int
	LastError   string
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MarkDelivered records a successful publish.
func (d *Delivery) MarkDelivered(at time.Time) {
	d.Status = DeliveryStatusDelivered
	d.Attempts++
	d.LastError = ""
	d.DeliveredAt = &at
	d.UpdatedAt = at
}

// MarkFailed records a failed publish attempt.
func (d *Delivery) MarkFailed(at time.Time, err error) {
	d.Status = DeliveryStatusFailed
	d.Attempts++
	if err != nil {
		d.LastError = err.Error()
	}
	d.UpdatedAt = at
}

// Abandon closes a row that will never be published, without counting an attempt.
func (d *Delivery) Abandon(at time.Time, reason string) {
	d.Status = DeliveryStatusFailed
	d.LastError = reason
	d.UpdatedAt = at
}
