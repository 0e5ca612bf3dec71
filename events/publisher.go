package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/catalinarubies/field-booking/booking"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	Exchange          = "fields_events"
	BookingRoutingKey = "fields.booking"
	FieldRoutingKey   = "fields.field"
)

type EventMessage struct {
	Operation  string `json:"operation"`
	EntityID   string `json:"entity_id"`
	EntityType string `json:"entity_type"`
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends booking and field events to a topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         b,
	})
}

func (p *Publisher) BookingCreated(ctx context.Context, b booking.Record) error {
	err := p.PublishJSON(ctx, BookingRoutingKey, EventMessage{
		Operation:  "create",
		EntityID:   b.ID,
		EntityType: "booking",
	})
	if err != nil {
		return fmt.Errorf("publish booking %v: %w", b.ID, err)
	}
	return nil
}

func (p *Publisher) FieldChanged(ctx context.Context, operation string, fieldID string) error {
	err := p.PublishJSON(ctx, FieldRoutingKey, EventMessage{
		Operation:  operation,
		EntityID:   fieldID,
		EntityType: "field",
	})
	if err != nil {
		return fmt.Errorf("publish field %v: %w", fieldID, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Discard drops every event. It is used when no broker is configured.
type Discard struct{}

func (Discard) BookingCreated(context.Context, booking.Record) error { return nil }

func (Discard) FieldChanged(context.Context, string, string) error { return nil }
