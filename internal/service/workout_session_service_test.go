package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/events"
	evmocks "alcyxob/gymflow/internal/events/mocks"
	"alcyxob/gymflow/internal/repository"
	"alcyxob/gymflow/internal/repository/mocks"
	"alcyxob/gymflow/internal/schedule"

	"github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type sessionFixture struct {
	svc      *workoutSessionService
	sessions *mocks.MockWorkoutSessionRepository
	plans    *mocks.MockWorkoutPlanRepository
	pub      *evmocks.MockPublisher
}

var sessionNow = time.Date(2025, time.January, 10, 18, 0, 0, 0, time.UTC)

func newSessionFixture(t *testing.T) *sessionFixture {
	ctrl := gomock.NewController(t)
	f := &sessionFixture{
		sessions: mocks.NewMockWorkoutSessionRepository(ctrl),
		plans:    mocks.NewMockWorkoutPlanRepository(ctrl),
		pub:      evmocks.NewMockPublisher(ctrl),
	}
	f.svc = NewWorkoutSessionService(f.sessions, f.plans, f.pub, zap.NewNop()).(*workoutSessionService)
	f.svc.now = fixedClock(sessionNow)
	return f
}

func planFor(memberID primitive.ObjectID) *domain.WorkoutPlan {
	return &domain.WorkoutPlan{
		ID:       primitive.NewObjectID(),
		MemberID: memberID,
		GymID:    primitive.NewObjectID(),
		Exercises: []domain.PlanExercise{
			{ExerciseID: primitive.NewObjectID(), Sets: 3},
			{ExerciseID: primitive.NewObjectID(), Sets: 4},
		},
	}
}

func TestStartSession(t *testing.T) {
	f := newSessionFixture(t)
	memberID := primitive.NewObjectID()
	plan := planFor(memberID)
	newID := primitive.NewObjectID()

	f.plans.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)
	f.sessions.EXPECT().ListByMemberAndStates(gomock.Any(), memberID, activeSessionStates).Return(nil, nil)
	f.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.WorkoutSession) (primitive.ObjectID, error) {
		if s.State != schedule.SessionInProgress || !s.Active {
			t.Errorf("session stored as %s (active=%v), want in_progress", s.State, s.Active)
		}
		return newID, nil
	})
	f.pub.EXPECT().Publish(gomock.Any(), eventNamed(events.WorkoutSessionStarted)).Return(nil)

	session, err := f.svc.StartSession(context.Background(), StartSessionRequest{MemberID: memberID, PlanID: plan.ID})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if session.ID != newID || session.GymID != plan.GymID {
		t.Errorf("unexpected session ids: %+v", session)
	}
	if session.StartTime == nil || !session.StartTime.Equal(sessionNow) || !session.SessionDate.Equal(sessionNow) {
		t.Errorf("start time should default to now, got %v / %v", session.StartTime, session.SessionDate)
	}
	if len(session.Exercises) != 2 || session.Exercises[1].PlannedSets != 4 {
		t.Errorf("exercises should be copied from the plan: %+v", session.Exercises)
	}
}

func TestStartSessionRejectsWhenPausedSessionExists(t *testing.T) {
	f := newSessionFixture(t)
	memberID := primitive.NewObjectID()
	plan := planFor(memberID)
	paused := domain.WorkoutSession{ID: primitive.NewObjectID(), MemberID: memberID, State: schedule.SessionPaused}

	f.plans.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)
	f.sessions.EXPECT().ListByMemberAndStates(gomock.Any(), memberID, gomock.Any()).Return([]domain.WorkoutSession{paused}, nil)

	_, err := f.svc.StartSession(context.Background(), StartSessionRequest{MemberID: memberID, PlanID: plan.ID})
	if !errors.Is(err, schedule.ErrActiveSessionExists) {
		t.Fatalf("expected ErrActiveSessionExists, got %v", err)
	}
	var rej *schedule.RejectionError
	if !errors.As(err, &rej) || rej.ConflictingID != paused.ID.Hex() {
		t.Fatalf("rejection should name the paused session, got %v", err)
	}
}

func TestStartSessionMapsDuplicateKey(t *testing.T) {
	f := newSessionFixture(t)
	memberID := primitive.NewObjectID()
	plan := planFor(memberID)

	f.plans.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)
	f.sessions.EXPECT().ListByMemberAndStates(gomock.Any(), memberID, gomock.Any()).Return(nil, nil)
	f.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(primitive.NilObjectID, repository.ErrDuplicate)

	_, err := f.svc.StartSession(context.Background(), StartSessionRequest{MemberID: memberID, PlanID: plan.ID})
	if !errors.Is(err, schedule.ErrActiveSessionExists) {
		t.Fatalf("expected ErrActiveSessionExists, got %v", err)
	}
}

func TestStartSessionRequiresOwnPlan(t *testing.T) {
	f := newSessionFixture(t)
	plan := planFor(primitive.NewObjectID())
	f.plans.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)

	_, err := f.svc.StartSession(context.Background(), StartSessionRequest{MemberID: primitive.NewObjectID(), PlanID: plan.ID})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestSessionTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    schedule.SessionState
		call    func(WorkoutSessionService, primitive.ObjectID) (*domain.WorkoutSession, error)
		want    schedule.SessionState
		event   string
		wantErr error
	}{
		{"pause in progress", schedule.SessionInProgress, pause, schedule.SessionPaused, "", nil},
		{"resume paused", schedule.SessionPaused, resume, schedule.SessionInProgress, "", nil},
		{"cancel paused", schedule.SessionPaused, cancel, schedule.SessionCancelled, events.WorkoutSessionCancelled, nil},
		{"complete in progress", schedule.SessionInProgress, complete, schedule.SessionCompleted, events.WorkoutSessionCompleted, nil},
		{"complete paused", schedule.SessionPaused, complete, "", "", schedule.ErrInvalidTransition},
		{"pause completed", schedule.SessionCompleted, pause, "", "", schedule.ErrInvalidTransition},
		{"resume in progress", schedule.SessionInProgress, resume, "", "", schedule.ErrInvalidTransition},
		{"cancel cancelled", schedule.SessionCancelled, cancel, "", "", schedule.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t)
			session := &domain.WorkoutSession{ID: primitive.NewObjectID(), MemberID: primitive.NewObjectID()}
			session.SetState(tt.from)

			f.sessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
			if tt.wantErr == nil {
				f.sessions.EXPECT().Update(gomock.Any(), gomock.Any(), tt.from).Return(nil)
			}
			if tt.event != "" {
				f.pub.EXPECT().Publish(gomock.Any(), eventNamed(tt.event)).Return(nil)
			}

			got, err := tt.call(f.svc, session.ID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.State != tt.want || got.Active != tt.want.IsActive() {
				t.Fatalf("state = %s (active=%v), want %s", got.State, got.Active, tt.want)
			}
		})
	}
}

func pause(s WorkoutSessionService, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	return s.PauseSession(context.Background(), id)
}

func resume(s WorkoutSessionService, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	return s.ResumeSession(context.Background(), id)
}

func cancel(s WorkoutSessionService, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	return s.CancelSession(context.Background(), id)
}

func complete(s WorkoutSessionService, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	return s.CompleteSession(context.Background(), id, CompleteSessionRequest{})
}

func TestCompleteSessionRecordsResults(t *testing.T) {
	f := newSessionFixture(t)
	start := sessionNow.Add(-time.Hour)
	session := &domain.WorkoutSession{ID: primitive.NewObjectID(), StartTime: &start}
	session.SetState(schedule.SessionInProgress)
	rating, calories := 4, 350
	exID := primitive.NewObjectID()

	f.sessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
	f.sessions.EXPECT().Update(gomock.Any(), gomock.Any(), schedule.SessionInProgress).Return(nil)
	f.pub.EXPECT().Publish(gomock.Any(), eventNamed(events.WorkoutSessionCompleted)).Return(nil)

	got, err := f.svc.CompleteSession(context.Background(), session.ID, CompleteSessionRequest{
		Exercises:      []CompletedExercise{{ExerciseID: exID, SetsCompleted: 3, RepsCompleted: 10}},
		Rating:         &rating,
		CaloriesBurned: &calories,
		Notes:          "good one",
	})
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if got.Duration() != time.Hour {
		t.Errorf("Duration = %s, want 1h", got.Duration())
	}
	if got.TotalSetsCompleted() != 3 || got.Exercises[0].CompletedSets[0].RestSeconds != domain.DefaultRestSeconds {
		t.Errorf("unexpected exercises: %+v", got.Exercises)
	}
	if *got.OverallRating != 4 || *got.CaloriesBurned != 350 || got.Notes != "good one" {
		t.Errorf("results not recorded: %+v", got)
	}
}

func TestCompleteSessionRejectsBadRating(t *testing.T) {
	f := newSessionFixture(t)
	bad := 6
	_, err := f.svc.CompleteSession(context.Background(), primitive.NewObjectID(), CompleteSessionRequest{Rating: &bad})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestRecordExerciseProgress(t *testing.T) {
	f := newSessionFixture(t)
	exID := primitive.NewObjectID()
	session := &domain.WorkoutSession{ID: primitive.NewObjectID()}
	session.SetState(schedule.SessionInProgress)

	f.sessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
	f.sessions.EXPECT().Update(gomock.Any(), gomock.Any(), schedule.SessionInProgress).Return(nil)

	got, err := f.svc.RecordExerciseProgress(context.Background(), session.ID, ExerciseProgress{ExerciseID: exID, Reps: 12, Completed: true})
	if err != nil {
		t.Fatalf("RecordExerciseProgress: %v", err)
	}
	if len(got.Exercises) != 1 || got.Exercises[0].CompletedSets[0].RestSeconds != domain.DefaultRestSeconds {
		t.Fatalf("unexpected exercises: %+v", got.Exercises)
	}

	paused := &domain.WorkoutSession{ID: primitive.NewObjectID()}
	paused.SetState(schedule.SessionPaused)
	f.sessions.EXPECT().GetByID(gomock.Any(), paused.ID).Return(paused, nil)
	if _, err := f.svc.RecordExerciseProgress(context.Background(), paused.ID, ExerciseProgress{ExerciseID: exID, Reps: 1}); !errors.Is(err, ErrSessionNotInProgress) {
		t.Fatalf("expected ErrSessionNotInProgress, got %v", err)
	}
}

func TestGetActiveSessionNone(t *testing.T) {
	f := newSessionFixture(t)
	memberID := primitive.NewObjectID()
	f.sessions.EXPECT().ListByMemberAndStates(gomock.Any(), memberID, activeSessionStates).Return([]domain.WorkoutSession{}, nil)

	got, err := f.svc.GetActiveSession(context.Background(), memberID)
	if err != nil || got != nil {
		t.Fatalf("expected no active session, got %v, %v", got, err)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	f := newSessionFixture(t)
	id := primitive.NewObjectID()
	f.sessions.EXPECT().GetByID(gomock.Any(), id).Return(nil, repository.ErrNotFound)

	if _, err := f.svc.GetSession(context.Background(), id); !errors.Is(err, ErrWorkoutSessionNotFound) {
		t.Fatalf("expected ErrWorkoutSessionNotFound, got %v", err)
	}
}

// racySessionRepo stores sessions in memory without any uniqueness check and
// widens the window between reading active sessions and inserting a new one.
type racySessionRepo struct {
	repository.WorkoutSessionRepository

	mu       sync.Mutex
	sessions []domain.WorkoutSession
	delay    time.Duration
}

func (r *racySessionRepo) ListByMemberAndStates(_ context.Context, memberID primitive.ObjectID, states []schedule.SessionState) ([]domain.WorkoutSession, error) {
	r.mu.Lock()
	var out []domain.WorkoutSession
	for _, s := range r.sessions {
		if s.MemberID != memberID {
			continue
		}
		for _, st := range states {
			if s.State == st {
				out = append(out, s)
			}
		}
	}
	r.mu.Unlock()
	time.Sleep(r.delay)
	return out, nil
}

func (r *racySessionRepo) Create(_ context.Context, s *domain.WorkoutSession) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = primitive.NewObjectID()
	r.sessions = append(r.sessions, *s)
	return s.ID, nil
}

func (r *racySessionRepo) activeCount(memberID primitive.ObjectID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.sessions {
		if s.MemberID == memberID && s.State.IsActive() {
			n++
		}
	}
	return n
}

// Two callers deciding on the same snapshot both pass the pure policy.
func TestCanStartSessionAloneDoesNotExcludeConcurrentCallers(t *testing.T) {
	repo := &racySessionRepo{}
	memberID := primitive.NewObjectID()

	var wg, read sync.WaitGroup
	read.Add(2)
	accepted := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			existing, _ := repo.ListByMemberAndStates(context.Background(), memberID, activeSessionStates)
			read.Done()
			read.Wait()

			records := make([]schedule.SessionRecord, 0, len(existing))
			for j := range existing {
				records = append(records, existing[j].Record())
			}
			d := schedule.CanStartSession(memberID.Hex(), records)
			if d.Accepted {
				s := &domain.WorkoutSession{MemberID: memberID}
				s.SetState(schedule.SessionInProgress)
				_, _ = repo.Create(context.Background(), s)
			}
			accepted <- d.Accepted
		}()
	}
	wg.Wait()
	close(accepted)

	n := 0
	for a := range accepted {
		if a {
			n++
		}
	}
	if n != 2 || repo.activeCount(memberID) != 2 {
		t.Fatalf("expected the unserialized sequence to admit both callers, got %d accepted", n)
	}
}

func TestStartSessionConcurrentCallersExactlyOneWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	plans := mocks.NewMockWorkoutPlanRepository(ctrl)
	pub := evmocks.NewMockPublisher(ctrl)
	repo := &racySessionRepo{delay: 5 * time.Millisecond}
	svc := NewWorkoutSessionService(repo, plans, pub, zap.NewNop())

	memberID := primitive.NewObjectID()
	plan := planFor(memberID)
	plans.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil).AnyTimes()
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.StartSession(context.Background(), StartSessionRequest{MemberID: memberID, PlanID: plan.ID})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, schedule.ErrActiveSessionExists):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 || rejected != callers-1 {
		t.Fatalf("succeeded=%d rejected=%d, want 1 and %d", succeeded, rejected, callers-1)
	}
	if n := repo.activeCount(memberID); n != 1 {
		t.Fatalf("stored %d active sessions, want 1", n)
	}
}

// sessionStore keeps one member's sessions in memory and applies Update only
// when the stored state still matches. Every GetByID waits on barrier when set.
type sessionStore struct {
	repository.WorkoutSessionRepository

	mu       sync.Mutex
	sessions map[primitive.ObjectID]domain.WorkoutSession
	delay    time.Duration
	barrier  *sync.WaitGroup
}

func newSessionStore(sessions ...domain.WorkoutSession) *sessionStore {
	s := &sessionStore{sessions: make(map[primitive.ObjectID]domain.WorkoutSession)}
	for _, ws := range sessions {
		s.sessions[ws.ID] = ws
	}
	return s
}

func (s *sessionStore) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	s.mu.Lock()
	ws, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	if s.barrier != nil {
		s.barrier.Done()
		s.barrier.Wait()
	}
	time.Sleep(s.delay)
	return &ws, nil
}

func (s *sessionStore) Update(_ context.Context, session *domain.WorkoutSession, from schedule.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.sessions[session.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if stored.State != from {
		return repository.ErrStaleState
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s *sessionStore) get(id primitive.ObjectID) domain.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

func inProgressSession() domain.WorkoutSession {
	start := sessionNow.Add(-30 * time.Minute)
	ws := domain.WorkoutSession{ID: primitive.NewObjectID(), MemberID: primitive.NewObjectID(), StartTime: &start}
	ws.SetState(schedule.SessionInProgress)
	return ws
}

type transitionResult struct {
	event schedule.SessionEvent
	err   error
}

func collectTransitions(t *testing.T, results <-chan transitionResult) (won []schedule.SessionEvent) {
	t.Helper()
	for r := range results {
		switch {
		case r.err == nil:
			won = append(won, r.event)
		case errors.Is(r.err, schedule.ErrInvalidTransition):
		default:
			t.Errorf("%s: unexpected error: %v", r.event, r.err)
		}
	}
	return won
}

func assertFinalState(t *testing.T, got domain.WorkoutSession, winner schedule.SessionEvent) {
	t.Helper()
	want := schedule.SessionPaused
	if winner == schedule.EventComplete {
		want = schedule.SessionCompleted
		if got.EndTime == nil {
			t.Errorf("completed session has no end time")
		}
	}
	if got.State != want || got.Active != want.IsActive() {
		t.Fatalf("stored state = %s (active=%v), want %s", got.State, got.Active, want)
	}
}

func TestConcurrentCompleteAndPauseExactlyOneWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := evmocks.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	session := inProgressSession()
	store := newSessionStore(session)
	store.delay = 2 * time.Millisecond
	svc := NewWorkoutSessionService(store, nil, pub, zap.NewNop())

	const callers = 8
	results := make(chan transitionResult, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		e := schedule.EventPause
		if i%2 == 0 {
			e = schedule.EventComplete
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if e == schedule.EventComplete {
				_, err = complete(svc, session.ID)
			} else {
				_, err = pause(svc, session.ID)
			}
			results <- transitionResult{event: e, err: err}
		}()
	}
	wg.Wait()
	close(results)

	won := collectTransitions(t, results)
	if len(won) != 1 {
		t.Fatalf("%d transitions succeeded (%v), want exactly 1", len(won), won)
	}
	assertFinalState(t, store.get(session.ID), won[0])
}

// Two service instances share one store, so only the conditional write
// separates them.
func TestConcurrentTransitionsAcrossInstancesRejectStaleWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := evmocks.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	session := inProgressSession()
	store := newSessionStore(session)
	var bothRead sync.WaitGroup
	bothRead.Add(2)
	store.barrier = &bothRead

	a := NewWorkoutSessionService(store, nil, pub, zap.NewNop())
	b := NewWorkoutSessionService(store, nil, pub, zap.NewNop())

	results := make(chan transitionResult, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := complete(a, session.ID)
		results <- transitionResult{event: schedule.EventComplete, err: err}
	}()
	go func() {
		defer wg.Done()
		_, err := pause(b, session.ID)
		results <- transitionResult{event: schedule.EventPause, err: err}
	}()
	wg.Wait()
	close(results)

	won := collectTransitions(t, results)
	if len(won) != 1 {
		t.Fatalf("%d transitions succeeded (%v), want exactly 1", len(won), won)
	}
	assertFinalState(t, store.get(session.ID), won[0])
}

func TestSessionUpdateStaleStateMapsToInvalidTransition(t *testing.T) {
	f := newSessionFixture(t)
	session := &domain.WorkoutSession{ID: primitive.NewObjectID(), MemberID: primitive.NewObjectID()}
	session.SetState(schedule.SessionInProgress)

	f.sessions.EXPECT().GetByID(gomock.Any(), session.ID).Return(session, nil)
	f.sessions.EXPECT().Update(gomock.Any(), gomock.Any(), schedule.SessionInProgress).Return(repository.ErrStaleState)

	if _, err := f.svc.PauseSession(context.Background(), session.ID); !errors.Is(err, schedule.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
