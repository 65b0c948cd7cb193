package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/sinmabazaar/backend/internal/messaging"
)

type kafkaPublisher struct {
	brokers []string

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

// NewPublisher creates a Kafka publisher. Writers are created lazily,
// one per topic, and reused.
func NewPublisher(brokers []string) messaging.Publisher {
	return &kafkaPublisher{
		brokers: brokers,
		writers: make(map[string]*kafkaGo.Writer),
	}
}

func (k *kafkaPublisher) writer(topic string) *kafkaGo.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	w, ok := k.writers[topic]
	if !ok {
		w = &kafkaGo.Writer{
			Addr:     kafkaGo.TCP(k.brokers...),
			Topic:    topic,
			Balancer: &kafkaGo.LeastBytes{},
		}
		k.writers[topic] = w
	}
	return w
}

func (k *kafkaPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return k.writer(topic).WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
