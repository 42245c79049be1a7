package alerting

import (
	"context"
	"strconv"

	"alertacordon/internal/domain/constants"
	"alertacordon/internal/domain/entity"
	"alertacordon/internal/domain/service"
)

// FirebaseChannel pushes alerts to every device subscribed to a topic.
type FirebaseChannel struct {
	notifier service.NotificationService
	topic    string
}

// NewFirebaseChannel creates a channel publishing to topic.
func NewFirebaseChannel(notifier service.NotificationService, topic string) *FirebaseChannel {
	return &FirebaseChannel{notifier: notifier, topic: topic}
}

func (c *FirebaseChannel) Name() string { return constants.ChannelFirebase }

// Publish titles the push with the category label and carries the pin
// position in the data payload so apps can open the map on it.
func (c *FirebaseChannel) Publish(ctx context.Context, alert *service.Alert) error {
	report := alert.Report
	data := map[string]string{
		"report_id": strconv.FormatInt(report.ID, 10),
		"category":  report.Category,
		"latitude":  strconv.FormatFloat(report.Latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(report.Longitude, 'f', -1, 64),
		"location":  report.Location,
	}

	return c.notifier.SendTopicNotification(ctx, c.topic, entity.CategoryLabel(report.Category), alert.Status, data)
}
