package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"kfc-ordering/internal/domain"
)

// KafkaPublisher pushes order events to a broker for external consumers
// (kitchen displays and the like). Fire-and-forget from the engine's view.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}
