package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/config"
	"github.com/yassirrachad97/DepotSmart/internal/messaging"
)

const (
	// stock events are published one at a time from request handlers
	batchSize      = 1
	batchTimeout   = 10 * time.Millisecond
	publishTimeout = 3 * time.Second
)

type kafkaPublisher struct {
	writer *kafkaGo.Writer
	logger *zap.Logger
}

// NewPublisher creates a Kafka publisher writing to the configured stock topic.
func NewPublisher(cfg config.KafkaConfig, logger *zap.Logger) messaging.Publisher {
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &kafkaGo.Writer{
		Addr:         kafkaGo.TCP(cfg.Brokers...),
		Topic:        cfg.StockTopic,
		Balancer:     &kafkaGo.Hash{},
		RequiredAcks: kafkaGo.RequireOne,
		BatchSize:    batchSize,
		BatchTimeout: batchTimeout,
		WriteTimeout: publishTimeout,
	}

	return &kafkaPublisher{writer: w, logger: logger}
}

func (k *kafkaPublisher) PublishEvent(ctx context.Context, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := k.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
	}); err != nil {
		return fmt.Errorf("write message to %s: %w", k.writer.Topic, err)
	}

	k.logger.Debug("event published", zap.String("topic", k.writer.Topic), zap.String("key", key))
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}
