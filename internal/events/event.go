// Package events publishes domain events to RabbitMQ, or to the log when no
// broker is configured.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event names, also used as routing keys.
const (
	MemberCreated = "member.created"
	MemberUpdated = "member.updated"
	MemberDeleted = "member.deleted"

	WorkoutPlanActivated = "workout_plan.activated"

	WorkoutSessionStarted   = "workout_session.started"
	WorkoutSessionCompleted = "workout_session.completed"
	WorkoutSessionCancelled = "workout_session.cancelled"
)

// Names lists every event the services publish. One durable queue is
// declared per name.
var Names = []string{
	MemberCreated, MemberUpdated, MemberDeleted,
	WorkoutPlanActivated,
	WorkoutSessionStarted, WorkoutSessionCompleted, WorkoutSessionCancelled,
}

// Notification kinds sent on the notification exchange as "email.<kind>".
const (
	NotificationWelcome  = "welcome"
	NotificationGoodbye  = "goodbye"
	NotificationPlanDone = "plan_ready"
)

// Event is a domain event as it travels on the wire.
type Event struct {
	ID          string    `json:"eventId"`
	Name        string    `json:"eventName"`
	AggregateID string    `json:"aggregateId"`
	OccurredAt  time.Time `json:"occurredOn"`
	Data        any       `json:"data,omitempty"`
}

// NewEvent stamps a new event with a random id and the current time.
func NewEvent(name, aggregateID string, data any) Event {
	return Event{
		ID:          uuid.NewString(),
		Name:        name,
		AggregateID: aggregateID,
		OccurredAt:  time.Now().UTC(),
		Data:        data,
	}
}

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks alcyxob/gymflow/internal/events Publisher

// Publisher sends events and notifications. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	PublishNotification(ctx context.Context, kind string, data any) error
	Close() error
}
