// Package kafka provides the outbound event publisher adapter.
// Commands signal data changes to downstream consumers through Kafka topics.
// The messages carry no payload, consumers re-read the views they care about.
package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
)

// EventPublisher publishes change notifications to Kafka using a synchronous
// producer. Implements ports.EventPublisher.
//
// Publish failures are logged and returned, callers decide whether to drop
// them. Command handlers drop them: a missed notification never rolls back a
// committed transaction.
type EventPublisher struct {
	producer           sarama.SyncProducer
	subscriptionsTopic string
	deliveriesTopic    string
	logger             *slog.Logger
}

// NewEventPublisher connects a synchronous producer to the given brokers.
// The producer waits for acknowledgement from all in-sync replicas.
func NewEventPublisher(
	brokers []string,
	subscriptionsTopic string,
	deliveriesTopic string,
	logger *slog.Logger,
) (*EventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return NewEventPublisherFromProducer(producer, subscriptionsTopic, deliveriesTopic, logger), nil
}

// NewEventPublisherFromProducer wraps an existing producer. Used by tests and
// callers that manage the producer lifecycle themselves.
func NewEventPublisherFromProducer(
	producer sarama.SyncProducer,
	subscriptionsTopic string,
	deliveriesTopic string,
	logger *slog.Logger,
) *EventPublisher {
	return &EventPublisher{
		producer:           producer,
		subscriptionsTopic: subscriptionsTopic,
		deliveriesTopic:    deliveriesTopic,
		logger:             logger,
	}
}

// SubscriptionsChanged signals that one or more subscriptions changed state.
func (p *EventPublisher) SubscriptionsChanged(ctx context.Context) error {
	return p.publish(ctx, p.subscriptionsTopic)
}

// DeliveriesChanged signals that the delivery ledger changed.
func (p *EventPublisher) DeliveriesChanged(ctx context.Context) error {
	return p.publish(ctx, p.deliveriesTopic)
}

// Close releases the underlying producer.
func (p *EventPublisher) Close() error {
	return p.producer.Close()
}

func (p *EventPublisher) publish(ctx context.Context, topic string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(nil),
	}

	_, _, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error("failed to publish change notification",
			"topic", topic,
			"error", err)
		return fmt.Errorf("failed to publish to topic %q: %w", topic, err)
	}

	return nil
}
