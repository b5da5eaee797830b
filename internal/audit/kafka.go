package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"mentorhub/internal/platform/kafka/producer"
)

// KafkaSink publishes audit events to a Kafka topic. Delivery is async and
// best-effort; the publisher logs failures but never blocks domain logic.
type KafkaSink struct {
	producer *producer.Producer
	topic    string
}

func NewKafkaSink(p *producer.Producer, topic string) *KafkaSink {
	return &KafkaSink{producer: p, topic: topic}
}

func (s *KafkaSink) Publish(_ context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return s.producer.ProduceAsync(&producer.Message{
		Topic: s.topic,
		Key:   []byte(event.Subject),
		Value: value,
		Headers: map[string]string{
			"action": event.Action,
		},
	})
}
