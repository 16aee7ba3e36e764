package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"homestay-pricing/internal/domain/booking"
	"homestay-pricing/internal/infra"
)

type MessagePublisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

// BookingEvents publishes booking lifecycle events keyed by homestay so one
// listing's events stay ordered within a partition.
type BookingEvents struct {
	publisher MessagePublisher
	topic     string
	logger    *slog.Logger
}

func NewBookingEvents(publisher MessagePublisher, topic string, logger *slog.Logger) *BookingEvents {
	return &BookingEvents{publisher: publisher, topic: topic, logger: logger}
}

func (b *BookingEvents) PublishSubmitted(ctx context.Context, ev booking.SubmittedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return infra.WrapRepoErr(b.logger, infra.KindBrokerFailure, "failed to encode booking event", err)
	}
	headers := map[string]string{
		"event-type":   ev.Type,
		"booking-code": ev.BookingCode,
	}
	key := strconv.FormatInt(ev.HomestayID, 10)
	if err := b.publisher.Publish(ctx, b.topic, key, payload, headers); err != nil {
		return infra.WrapRepoErr(b.logger, infra.KindBrokerFailure, "failed to publish booking event", err)
	}
	return nil
}

// LogPublisher stands in for Kafka when no brokers are configured.
type LogPublisher struct {
	Logger *slog.Logger
}

func (p LogPublisher) Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error {
	p.Logger.InfoContext(ctx, "event not sent to a broker",
		slog.String("topic", topic),
		slog.String("key", key),
		slog.Int("bytes", len(payload)),
		slog.String("event_type", headers["event-type"]),
	)
	return nil
}
