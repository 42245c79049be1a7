package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"alertacordon/internal/domain/service"

	"github.com/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// kafkaPublisher writes events to a Kafka topic keyed by report ID, so all
// events of one report land on the same partition.
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a producer for topic
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}

	return &kafkaPublisher{writer: w, logger: logger}
}

func (p *kafkaPublisher) PublishReportCreated(ctx context.Context, event *service.ReportCreatedEvent) error {
	msg, err := eventToMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "write kafka message")
	}

	p.logger.Info("[Kafka] Event published", slog.Int64("report_id", event.ReportID))

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}

func eventToMessage(event *service.ReportCreatedEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, errors.Wrap(err, "serialize report event")
	}

	attributes := eventAttributes(event)
	headers := make([]kafkago.Header, 0, len(attributes)+1)
	for _, key := range []string{"report_id", "category", "request_id"} {
		if value, ok := attributes[key]; ok {
			headers = append(headers, kafkago.Header{Key: key, Value: []byte(value)})
		}
	}
	headers = append(headers, kafkago.Header{Key: "created_at", Value: []byte(event.CreatedAt.Format(time.RFC3339))})

	return kafkago.Message{
		Key:     []byte(strconv.FormatInt(event.ReportID, 10)),
		Value:   data,
		Headers: headers,
	}, nil
}
