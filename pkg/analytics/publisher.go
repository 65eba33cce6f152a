// Package analytics publishes client events to Kafka.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/cbodonnell/saltclient/pkg/game/types"
)

// GameEvent is the record written to the topic.
type GameEvent struct {
	SessionID string                `json:"sessionId"`
	Timestamp time.Time             `json:"timestamp"`
	Event     types.ClientEventView `json:"event"`
}

// Publisher writes every client event it is notified of to a Kafka topic,
// keyed by the player the event concerns.
type Publisher struct {
	producer  sarama.SyncProducer
	topic     string
	sessionID string
	now       func() time.Time
}

// NewPublisher connects a synchronous producer to brokers.
func NewPublisher(brokers []string, topic string, sessionID string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return NewPublisherWithProducer(producer, topic, sessionID), nil
}

func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, sessionID string) *Publisher {
	return &Publisher{
		producer:  producer,
		topic:     topic,
		sessionID: sessionID,
		now:       time.Now,
	}
}

func (p *Publisher) Notify(ctx context.Context, event types.ClientEventView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(GameEvent{
		SessionID: p.sessionID,
		Timestamp: p.now().UTC(),
		Event:     event,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PlayerID.String()),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Kind, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
