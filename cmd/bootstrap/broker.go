package bootstrap

import (
	"context"
	"log/slog"

	"homestay-pricing/internal/infra/broker/kafka"
	"homestay-pricing/internal/pkg/config"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewMessagePublisher,
	),
)

// NewMessagePublisher connects to Kafka when brokers are configured and
// falls back to logging the events otherwise.
func NewMessagePublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kafka.MessagePublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn("KAFKA_BROKERS is empty, booking events will only be logged")
		return kafka.LogPublisher{Logger: logger}, nil
	}

	producer, err := kafka.NewProducer(cfg.Kafka.Brokers, nil)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer, nil
}
