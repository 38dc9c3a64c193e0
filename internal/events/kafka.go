package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/config"
	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"
	"github.com/Ksaiko-Vlad/sofa-order-service/pkg/utils"
)

// Publisher пишет события смены статуса заказа в Kafka. Ключ сообщения -
// ID заказа, чтобы события одного заказа попадали в одну партицию.
type Publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
	retry  utils.RetryConfig
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *Publisher {
	return &Publisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
		},
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond * 100,
			MaxDelay:     time.Second,
		},
	}
}

func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.OrderStatusEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return utils.Retry(p.retry, func() error {
		return p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
			Value: value,
		})
	}, context.Canceled)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
