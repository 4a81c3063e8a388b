// Package queue publishes reservation lifecycle events to RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/TourBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends each event to a durable topic exchange with the event type as routing key.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   logger.Logger
}

func NewPublisher(url, exchange string, log logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	log.LogAttrs(context.Background(), logger.InfoLevel, "rabbitmq publisher ready", logger.String("exchange", exchange))

	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *Publisher) Publish(ctx context.Context, evt domain.ReservationEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    evt.OccurredAt,
		Type:         string(evt.Type),
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishes.
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, string(evt.Type), false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", evt.Type, err)
	}

	p.logger.LogAttrs(ctx, logger.DebugLevel, "event published",
		logger.String("type", string(evt.Type)),
		logger.String("reservation_id", evt.ReservationID),
	)
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("close channel: %w", err)
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}
	return nil
}

// NopPublisher drops events; used when no broker is configured.
type NopPublisher struct {
	Logger logger.Logger
}

func (n NopPublisher) Publish(ctx context.Context, evt domain.ReservationEvent) error {
	if n.Logger != nil {
		n.Logger.LogAttrs(ctx, logger.DebugLevel, "event dropped (broker disabled)",
			logger.String("type", string(evt.Type)),
			logger.String("reservation_id", evt.ReservationID),
		)
	}
	return nil
}

func (NopPublisher) Close() error { return nil }
