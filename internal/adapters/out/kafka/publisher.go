// Package kafka publishes committed domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"logistics/internal/pkg/ddd"

	skafka "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Writer is the part of kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// EventPublisher writes one message per domain event, keyed by aggregate id so that the
// events of one aggregate stay ordered within a partition.
type EventPublisher struct {
	writer Writer
	logger *zap.Logger
}

func NewEventPublisher(brokers []string, topic string, logger *zap.Logger) *EventPublisher {
	return NewEventPublisherWithWriter(&skafka.Writer{
		Addr:         skafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &skafka.Hash{},
		RequiredAcks: skafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}, logger)
}

func NewEventPublisherWithWriter(w Writer, logger *zap.Logger) *EventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventPublisher{writer: w, logger: logger.With(zap.String("component", "kafka-publisher"))}
}

func (p *EventPublisher) Publish(ctx context.Context, events []ddd.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]skafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", e.Name, err)
		}
		msgs = append(msgs, skafka.Message{
			Key:   []byte(e.AggregateID),
			Value: value,
			Time:  e.OccurredAt,
			Headers: []skafka.Header{
				{Key: "event-name", Value: []byte(e.Name)},
				{Key: "aggregate-type", Value: []byte(e.AggregateType)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events: %w", len(msgs), err)
	}

	p.logger.Debug("domain events published", zap.Int("count", len(msgs)))
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, []ddd.Event) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
