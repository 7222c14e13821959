package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	exchanges  []string
	queues     []string
	bindings   map[string]string // queue -> exchange/key
	published  []published
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	f.exchanges = append(f.exchanges, name+":"+kind)
	return nil
}

func (f *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	f.queues = append(f.queues, name)
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	if f.bindings == nil {
		f.bindings = map[string]string{}
	}
	f.bindings[name] = exchange + "/" + key
	return nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{exchange, key, msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type fakeConn struct{ closed bool }

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func newTestPublisher(t *testing.T) (*RabbitMQPublisher, *fakeChannel, *fakeConn) {
	t.Helper()
	ch, conn := &fakeChannel{}, &fakeConn{}
	p, err := newRabbitMQPublisher(conn, ch, RabbitMQOptions{Exchange: "gym.events", NotificationExchange: "notifications"}, zap.NewNop())
	if err != nil {
		t.Fatalf("newRabbitMQPublisher: %v", err)
	}
	return p, ch, conn
}

func TestRabbitMQPublisherDeclaresTopology(t *testing.T) {
	_, ch, _ := newTestPublisher(t)

	if len(ch.exchanges) != 2 || ch.exchanges[0] != "gym.events:topic" || ch.exchanges[1] != "notifications:topic" {
		t.Fatalf("unexpected exchanges: %v", ch.exchanges)
	}
	if len(ch.queues) != len(Names)+1 {
		t.Fatalf("declared %d queues, want %d", len(ch.queues), len(Names)+1)
	}
	if got := ch.bindings[MemberCreated]; got != "gym.events/member.created" {
		t.Errorf("member.created bound to %q", got)
	}
	if got := ch.bindings[notificationQueue]; got != "notifications/email.*" {
		t.Errorf("notification queue bound to %q", got)
	}
}

func TestRabbitMQPublisherPublish(t *testing.T) {
	p, ch, _ := newTestPublisher(t)

	e := NewEvent(WorkoutSessionStarted, "session-1", map[string]string{"memberId": "m1"})
	if err := p.Publish(context.Background(), e); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(ch.published) != 1 {
		t.Fatalf("published %d messages, want 1", len(ch.published))
	}
	got := ch.published[0]
	if got.exchange != "gym.events" || got.key != WorkoutSessionStarted {
		t.Errorf("published to %s/%s", got.exchange, got.key)
	}
	if got.msg.DeliveryMode != amqp.Persistent || got.msg.MessageId != e.ID {
		t.Errorf("unexpected message properties: %+v", got.msg)
	}
	var decoded Event
	if err := json.Unmarshal(got.msg.Body, &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.Name != WorkoutSessionStarted || decoded.AggregateID != "session-1" {
		t.Errorf("unexpected body: %+v", decoded)
	}

	if err := p.PublishNotification(context.Background(), NotificationWelcome, map[string]string{"email": "a@b.c"}); err != nil {
		t.Fatalf("PublishNotification: %v", err)
	}
	if n := ch.published[1]; n.exchange != "notifications" || n.key != "email.welcome" {
		t.Errorf("notification published to %s/%s", n.exchange, n.key)
	}
}

func TestRabbitMQPublisherErrorsAndClose(t *testing.T) {
	p, ch, conn := newTestPublisher(t)

	ch.publishErr = errors.New("channel closed")
	if err := p.Publish(context.Background(), NewEvent(MemberDeleted, "m1", nil)); err == nil {
		t.Fatal("expected publish error")
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !ch.closed || !conn.closed {
		t.Errorf("expected channel and connection to be closed")
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if err := p.Publish(context.Background(), NewEvent(MemberDeleted, "m1", nil)); err == nil {
		t.Errorf("publishing after Close should fail")
	}
}
