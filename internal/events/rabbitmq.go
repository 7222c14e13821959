package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const notificationQueue = "email.notifications"

// RabbitMQOptions names the broker and exchanges to publish to.
type RabbitMQOptions struct {
	URI                  string
	Exchange             string // domain events, routed by event name
	NotificationExchange string // notifications, routed by "email.<kind>"
}

// amqpChannel is the subset of *amqp.Channel the publisher uses.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes persistent JSON messages on topic exchanges.
type RabbitMQPublisher struct {
	mu     sync.Mutex
	conn   io.Closer
	ch     amqpChannel
	opts   RabbitMQOptions
	logger *zap.Logger
}

// NewRabbitMQPublisher dials the broker and declares the exchanges, one
// durable queue per event name, and the notification queue.
func NewRabbitMQPublisher(opts RabbitMQOptions, logger *zap.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(opts.URI)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	p, err := newRabbitMQPublisher(conn, ch, opts, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

func newRabbitMQPublisher(conn io.Closer, ch amqpChannel, opts RabbitMQOptions, logger *zap.Logger) (*RabbitMQPublisher, error) {
	p := &RabbitMQPublisher{conn: conn, ch: ch, opts: opts, logger: logger.Named("rabbitmq")}
	if err := p.declareTopology(); err != nil {
		return nil, err
	}
	p.logger.Info("RabbitMQ initialized",
		zap.String("exchange", opts.Exchange),
		zap.String("notification_exchange", opts.NotificationExchange))
	return p, nil
}

func (p *RabbitMQPublisher) declareTopology() error {
	for _, ex := range []string{p.opts.Exchange, p.opts.NotificationExchange} {
		if err := p.ch.ExchangeDeclare(ex, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare exchange %s: %w", ex, err)
		}
	}
	for _, name := range Names {
		if err := p.bind(name, name, p.opts.Exchange); err != nil {
			return err
		}
	}
	return p.bind(notificationQueue, "email.*", p.opts.NotificationExchange)
}

func (p *RabbitMQPublisher) bind(queue, key, exchange string) error {
	if _, err := p.ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := p.ch.QueueBind(queue, key, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s to %s: %w", queue, exchange, err)
	}
	return nil
}

// Publish sends e to the events exchange with its name as routing key.
func (p *RabbitMQPublisher) Publish(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", e.Name, err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID,
		Timestamp:    e.OccurredAt,
		Type:         e.Name,
		Body:         body,
	}
	if err := p.publish(ctx, p.opts.Exchange, e.Name, msg); err != nil {
		p.logger.Error("Error publishing event", zap.String("event", e.Name), zap.Error(err))
		return err
	}
	p.logger.Debug("Event published", zap.String("event", e.Name), zap.String("event_id", e.ID))
	return nil
}

type notification struct {
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// PublishNotification sends data to the notification exchange as "email.<kind>".
func (p *RabbitMQPublisher) PublishNotification(ctx context.Context, kind string, data any) error {
	now := time.Now().UTC()
	body, err := json.Marshal(notification{Type: kind, Data: data, Timestamp: now})
	if err != nil {
		return fmt.Errorf("encode notification %s: %w", kind, err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Body:         body,
	}
	key := notificationKey(kind)
	if err := p.publish(ctx, p.opts.NotificationExchange, key, msg); err != nil {
		p.logger.Error("Error publishing notification", zap.String("routing_key", key), zap.Error(err))
		return err
	}
	return nil
}

func (p *RabbitMQPublisher) publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return fmt.Errorf("publish %s: publisher is closed", key)
	}
	return p.ch.PublishWithContext(ctx, exchange, key, false, false, msg)
}

// Close closes the channel and the connection. Calling it twice is a no-op.
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return nil
	}
	chErr := p.ch.Close()
	connErr := p.conn.Close()
	p.ch = nil
	if chErr != nil {
		return chErr
	}
	if connErr != nil {
		return connErr
	}
	p.logger.Info("RabbitMQ connection closed")
	return nil
}

func notificationKey(kind string) string {
	return "email." + kind
}
