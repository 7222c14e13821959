package service

import (
	"alcyxob/gymflow/internal/events"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidID        = errors.New("invalid or missing ID")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, fmt.Sprintf(format, args...))
}

func requireID(id primitive.ObjectID, what string) error {
	if id == primitive.NilObjectID {
		return fmt.Errorf("%w: %s", ErrInvalidID, what)
	}
	return nil
}

// ownerLocks serializes read-decide-write sequences per owner (member) so two
// requests of the same member cannot both pass a conflict check on the same
// snapshot. Entries are reference counted and dropped when unused.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*ownerLock
}

type ownerLock struct {
	mu   sync.Mutex
	refs int
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[string]*ownerLock)}
}

// lock blocks until owner's lock is held and returns the unlock function.
func (l *ownerLocks) lock(owner string) func() {
	l.mu.Lock()
	ol, ok := l.locks[owner]
	if !ok {
		ol = &ownerLock{}
		l.locks[owner] = ol
	}
	ol.refs++
	l.mu.Unlock()

	ol.mu.Lock()
	return func() {
		ol.mu.Unlock()
		l.mu.Lock()
		ol.refs--
		if ol.refs == 0 {
			delete(l.locks, owner)
		}
		l.mu.Unlock()
	}
}

// publish sends an event after a committed write. Failures are logged, not returned.
func publish(ctx context.Context, pub events.Publisher, logger *zap.Logger, name, aggregateID string, data any) {
	if pub == nil {
		return
	}
	ev := events.NewEvent(name, aggregateID, data)
	if err := pub.Publish(ctx, ev); err != nil {
		logger.Warn("Failed to publish event",
			zap.String("event", name),
			zap.String("aggregateId", aggregateID),
			zap.Error(err),
		)
	}
}

func notify(ctx context.Context, pub events.Publisher, logger *zap.Logger, kind string, data any) {
	if pub == nil {
		return
	}
	if err := pub.PublishNotification(ctx, kind, data); err != nil {
		logger.Warn("Failed to publish notification", zap.String("kind", kind), zap.Error(err))
	}
}

// clock is swapped in tests.
type clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }
