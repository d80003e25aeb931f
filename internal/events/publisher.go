package events

import (
	"context"
	"encoding/json"
	"time"

	"prodcheck/internal/config"
	"prodcheck/internal/logger"

	"github.com/segmentio/kafka-go"
)

// Publisher emits validation outcomes for downstream consumers (alerting,
// scraper feedback).
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(cfg *config.Config, logger *logger.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers),
		Topic:        cfg.ValidationTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: time.Second,
	}

	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

type InvalidProductEvent struct {
	Type      string      `json:"type"`
	ProductID interface{} `json:"product_id"`
	Reason    string      `json:"reason"`
	Timestamp time.Time   `json:"timestamp"`
}

func (p *Publisher) PublishInvalid(ctx context.Context, productID interface{}, reason string) error {
	event := InvalidProductEvent{
		Type:      "product.invalid",
		ProductID: productID,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	p.logger.Debug("Publishing invalid-product event: %s", string(payload))
	return p.writer.WriteMessages(ctx, kafka.Message{Value: payload})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
