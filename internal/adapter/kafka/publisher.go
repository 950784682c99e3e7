package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/kitsunebi/disaster-info-api/internal/config"
	"github.com/kitsunebi/disaster-info-api/internal/domain"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher produces alert events to the alert Kafka topic.
// It implements watch.AlertSink.
type Publisher struct {
	writer  *kafkago.Writer
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured alert topic.
func NewPublisher(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAlertTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, metrics: metrics, logger: logger}
}

// Publish serializes and writes the alert events to the topic in a single
// WriteMessages call.
func (p *Publisher) Publish(ctx context.Context, events ...domain.AlertEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(events))
	for i := range events {
		msg, err := serializeAlert(events[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return err
	}
	p.metrics.AlertsPublished.Add(float64(len(events)))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeAlert marshals an AlertEvent into a Kafka message keyed by the
// alert ID so repeats of the same alert land on the same partition.
func serializeAlert(event domain.AlertEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize alert event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "alert_type", Value: []byte(event.Kind)},
			{Key: "published_at", Value: []byte(event.DetectedAt.Format(time.RFC3339))},
		},
	}, nil
}
