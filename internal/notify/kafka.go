package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter es el subconjunto de *kafka.Writer que usamos (reemplazable en tests).
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publica cada Message en un topic, con key "<kind>-<id>".
type KafkaSink struct {
	w     messageWriter
	topic string
}

func NewKafkaSink(brokers []string, topic string) (*KafkaSink, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("notify: at least one kafka broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("notify: kafka topic cannot be empty")
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &KafkaSink{w: w, topic: topic}, nil
}

func (s *KafkaSink) Publish(ctx context.Context, m Message) error {
	value, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("notify: kafka marshal: %w", err)
	}

	err = s.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(m.Key()),
		Value: value,
		Time:  m.CreatedAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(m.Kind)},
			{Key: "message-id", Value: []byte(m.ID)},
		},
	})
	if err != nil {
		return fmt.Errorf("notify: kafka publish to %s: %w", s.topic, err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.w.Close()
}
