package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher writes cart events as JSON messages keyed by session id,
// so one session's events land on one partition in order.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaPublisher creates a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: 2 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaPublisher) ItemAdded(ctx context.Context, sessionID, productID, size string) {
	p.publish(ctx, Event{
		Type:       TypeItemAdded,
		SessionID:  sessionID,
		ProductID:  productID,
		Size:       size,
		OccurredAt: time.Now(),
	})
}

func (p *KafkaPublisher) LookAdded(ctx context.Context, sessionID, lookID string, count int) {
	p.publish(ctx, Event{
		Type:       TypeLookAdded,
		SessionID:  sessionID,
		LookID:     lookID,
		Count:      count,
		OccurredAt: time.Now(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) publish(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("marshal cart event failed", zap.Error(err))
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SessionID),
		Value: payload,
	})
	if err != nil {
		p.logger.Warn("cart event publish failed, dropping event",
			zap.String("type", event.Type), zap.Error(err))
	}
}
