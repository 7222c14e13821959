package schedule

import "fmt"

// SessionState is the lifecycle state of a workout session.
type SessionState string

const (
	SessionPlanned    SessionState = "planned"
	SessionInProgress SessionState = "in_progress"
	SessionPaused     SessionState = "paused"
	SessionCompleted  SessionState = "completed"
	SessionCancelled  SessionState = "cancelled"
)

// SessionEvent triggers a session state transition.
type SessionEvent string

const (
	EventStart    SessionEvent = "start"
	EventPause    SessionEvent = "pause"
	EventResume   SessionEvent = "resume"
	EventComplete SessionEvent = "complete"
	EventCancel   SessionEvent = "cancel"
)

var sessionTransitions = map[SessionState]map[SessionEvent]SessionState{
	SessionPlanned: {
		EventStart: SessionInProgress,
	},
	SessionInProgress: {
		EventPause:    SessionPaused,
		EventComplete: SessionCompleted,
		EventCancel:   SessionCancelled,
	},
	SessionPaused: {
		EventResume: SessionInProgress,
		EventCancel: SessionCancelled,
	},
}

// ParseSessionState validates a stored or requested state name.
func ParseSessionState(s string) (SessionState, error) {
	switch st := SessionState(s); st {
	case SessionPlanned, SessionInProgress, SessionPaused, SessionCompleted, SessionCancelled:
		return st, nil
	}
	return "", invalidArgument("unknown session state %q", s)
}

// IsActive reports whether the session blocks its member from starting
// another one. Paused sessions count as active.
func (s SessionState) IsActive() bool {
	return s == SessionInProgress || s == SessionPaused
}

// IsTerminal reports whether no event can leave s.
func (s SessionState) IsTerminal() bool {
	return s == SessionCompleted || s == SessionCancelled
}

// Apply returns the state reached by applying e to s. Terminal states and
// events not listed for s yield ErrInvalidTransition.
func (s SessionState) Apply(e SessionEvent) (SessionState, error) {
	next, ok := sessionTransitions[s][e]
	if !ok {
		return s, fmt.Errorf("%w: cannot %s a session that is %s", ErrInvalidTransition, e, s)
	}
	return next, nil
}

// CanApply reports whether e is allowed from s.
func (s SessionState) CanApply(e SessionEvent) bool {
	_, ok := sessionTransitions[s][e]
	return ok
}
