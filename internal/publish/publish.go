// Package publish emits decision records as audit events to Kafka. The
// serving path never depends on publish success.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/loopmarket/match-canary/go-controller/internal/decision"
	"github.com/segmentio/kafka-go"
)

// #region publisher-interface

// Publisher abstracts the audit sink so the pipeline runs without Kafka.
type Publisher interface {
	PublishDecision(ctx context.Context, rec decision.Record) error
	Close() error
}

// #endregion publisher-interface

// #region kafka-publisher

// KafkaPublisher writes decision records to one topic, keyed by run id.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a synchronous publisher for the given brokers
// and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// PublishDecision sends one decision record as a JSON message.
func (p *KafkaPublisher) PublishDecision(ctx context.Context, rec decision.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal decision record: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(rec.RunID),
		Value: raw,
	}); err != nil {
		return fmt.Errorf("publish decision %s: %w", rec.RunID, err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// #endregion kafka-publisher

// #region nop

// Nop is the publisher used when no Kafka wiring is configured.
type Nop struct{}

func (Nop) PublishDecision(context.Context, decision.Record) error { return nil }
func (Nop) Close() error                                           { return nil }

// #endregion nop
