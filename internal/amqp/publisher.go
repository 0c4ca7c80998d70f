// Package amqp publishes domain events to a RabbitMQ exchange.
package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/echuwok12/SplitPayment/internal/events"
)

const publishTimeout = 5 * time.Second

// channel is the subset of *amqp091.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends events to a durable topic exchange. It is safe for
// concurrent use.
type Publisher struct {
	conn       *amqp091.Connection
	mu         sync.Mutex
	channel    channel
	exchange   string
	routingKey string
	now        func() time.Time
}

var _ events.Publisher = (*Publisher)(nil)

// NewPublisher dials url and declares the exchange.
func NewPublisher(url, exchange, routingKey string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newPublisher(ch, exchange, routingKey)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange, routingKey string) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
		now:        time.Now,
	}, nil
}

// PublishExpenseCreated publishes event as a persistent JSON message.
func (p *Publisher) PublishExpenseCreated(ctx context.Context, event events.ExpenseCreated) error {
	msg := NewExpenseCreatedMessage(event, p.now())
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,   // exchange
		p.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.ExpenseID,
			Type:         MessageTypeExpenseCreated,
			Timestamp:    msg.PublishedAt,
			Body:         body,
		},
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.InfoContext(ctx, "Published expense created event",
		"expense_id", event.ExpenseID,
		"folder_id", event.FolderID,
		"exchange", p.exchange,
		"routing_key", p.routingKey)

	return nil
}

// Close closes the channel and then the connection. Both are attempted and
// any failures are returned joined.
func (p *Publisher) Close() error {
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}
