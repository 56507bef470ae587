package mq

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"workation/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Publisher emits domain events onto a topic exchange. When no broker URL is
// configured the returned publisher is a no-op, mirroring the local-only mode
// of the rest of the service.
type Publisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload any) error
	Close() error
}

type publisherImpl struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

type noopPublisher struct{}

func (noopPublisher) PublishJSON(context.Context, string, any) error { return nil }
func (noopPublisher) Close() error                                   { return nil }

func New(cfg *config.Config) Publisher {
	url := cfg.Events.RabbitMQ.URL
	if url == "" {
		log.Info().Msg("No RabbitMQ URL configured, event publishing disabled")

		return noopPublisher{}
	}

	exchange := cfg.Events.RabbitMQ.Exchange
	if exchange == "" {
		exchange = cfg.App.Name
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open RabbitMQ channel")
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		log.Fatal().Err(err).Str("exchange", exchange).Msg("Failed to declare RabbitMQ exchange")
	}

	log.Info().Str("exchange", exchange).Msg("Connected to RabbitMQ")

	return &publisherImpl{conn: conn, ch: ch, exchange: exchange}
}

func (p *publisherImpl) PublishJSON(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (p *publisherImpl) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}

	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("failed to close RabbitMQ connection: %w", err)
		}
	}

	return nil
}
