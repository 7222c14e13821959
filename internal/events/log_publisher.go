package events

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher writes events to the logger instead of a broker.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.Named("events")}
}

func (p *LogPublisher) Publish(_ context.Context, e Event) error {
	p.logger.Info("event published",
		zap.String("event_id", e.ID),
		zap.String("event", e.Name),
		zap.String("aggregate_id", e.AggregateID),
		zap.Time("occurred_at", e.OccurredAt),
	)
	return nil
}

func (p *LogPublisher) PublishNotification(_ context.Context, kind string, data any) error {
	p.logger.Info("notification published", zap.String("routing_key", notificationKey(kind)), zap.Any("data", data))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
