package schedule

import (
	"errors"
	"testing"
)

func TestSessionStateApply(t *testing.T) {
	t.Parallel()

	allowed := []struct {
		from  SessionState
		event SessionEvent
		to    SessionState
	}{
		{SessionPlanned, EventStart, SessionInProgress},
		{SessionInProgress, EventPause, SessionPaused},
		{SessionInProgress, EventComplete, SessionCompleted},
		{SessionInProgress, EventCancel, SessionCancelled},
		{SessionPaused, EventResume, SessionInProgress},
		{SessionPaused, EventCancel, SessionCancelled},
	}
	for _, tt := range allowed {
		got, err := tt.from.Apply(tt.event)
		if err != nil {
			t.Fatalf("%s --%s--> unexpected error: %v", tt.from, tt.event, err)
		}
		if got != tt.to {
			t.Fatalf("%s --%s--> %s, want %s", tt.from, tt.event, got, tt.to)
		}
	}

	rejected := []struct {
		from  SessionState
		event SessionEvent
	}{
		{SessionPlanned, EventPause},
		{SessionPlanned, EventComplete},
		{SessionInProgress, EventStart},
		{SessionInProgress, EventResume},
		{SessionPaused, EventPause},
		{SessionPaused, EventComplete},
		{SessionCompleted, EventStart},
		{SessionCompleted, EventCancel},
		{SessionCancelled, EventResume},
		{SessionCancelled, EventCancel},
	}
	for _, tt := range rejected {
		got, err := tt.from.Apply(tt.event)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s --%s--> expected ErrInvalidTransition, got %v", tt.from, tt.event, err)
		}
		if got != tt.from {
			t.Fatalf("failed transition should keep state %s, got %s", tt.from, got)
		}
	}
}

func TestSessionStateClassification(t *testing.T) {
	t.Parallel()

	for _, s := range []SessionState{SessionInProgress, SessionPaused} {
		if !s.IsActive() || s.IsTerminal() {
			t.Fatalf("%s should be active and non-terminal", s)
		}
	}
	for _, s := range []SessionState{SessionCompleted, SessionCancelled} {
		if s.IsActive() || !s.IsTerminal() {
			t.Fatalf("%s should be terminal and inactive", s)
		}
		if s.CanApply(EventStart) || s.CanApply(EventCancel) {
			t.Fatalf("%s should not accept any event", s)
		}
	}
	if SessionPlanned.IsActive() || SessionPlanned.IsTerminal() {
		t.Fatalf("planned should be neither active nor terminal")
	}
}

func TestParseSessionState(t *testing.T) {
	t.Parallel()

	if s, err := ParseSessionState("paused"); err != nil || s != SessionPaused {
		t.Fatalf("ParseSessionState(paused) = %q, %v", s, err)
	}
	if _, err := ParseSessionState("running"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
