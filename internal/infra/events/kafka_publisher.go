// Package events publishes order lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"bistro/config"
	"bistro/internal/domain/service"
	"bistro/internal/errors"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const defaultWriteTimeout = 5 * time.Second

// kafkaPublisher implements service.EventPublisher on a kafka.Writer.
// Events are keyed by order ID so consumers see one order's events in order.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to the configured topic.
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *slog.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}
	if writer.WriteTimeout <= 0 {
		writer.WriteTimeout = defaultWriteTimeout
	}

	return &kafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// Publish writes one event to the order topic.
func (p *kafkaPublisher) Publish(ctx context.Context, event *service.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode order event")
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to publish order event")
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// noopPublisher is a no-op implementation when Kafka is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, event *service.OrderEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, skipping",
		slog.String("type", event.Type),
		slog.Int64("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Kafka
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Kafka not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required when kafka is enabled")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka topic is required when kafka is enabled")
	}

	logger.Info("Using Kafka publisher for order events",
		slog.Any("brokers", cfg.Brokers),
		slog.String("topic", cfg.Topic),
	)

	publisher := NewKafkaPublisher(cfg, logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
