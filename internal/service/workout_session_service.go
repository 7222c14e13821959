package service

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/events"
	"alcyxob/gymflow/internal/repository"
	"alcyxob/gymflow/internal/schedule"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrWorkoutSessionNotFound = errors.New("workout session not found")
	ErrSessionNotInProgress   = errors.New("exercise progress can only be recorded while the session is in progress")
)

var activeSessionStates = []schedule.SessionState{schedule.SessionInProgress, schedule.SessionPaused}

// StartSessionRequest starts a session of a plan for a member.
type StartSessionRequest struct {
	MemberID    primitive.ObjectID
	PlanID      primitive.ObjectID
	SessionDate time.Time // defaults to now
	StartTime   time.Time // defaults to now
}

// CompletedExercise is one exercise reported when a session is completed.
type CompletedExercise struct {
	ExerciseID    primitive.ObjectID
	SetsCompleted int
	RepsCompleted int
	Weight        *float64
	Duration      *int
	RestSeconds   int
	Notes         string
	Rating        *int
}

// CompleteSessionRequest closes a session.
type CompleteSessionRequest struct {
	EndTime        time.Time // defaults to now
	Exercises      []CompletedExercise
	Rating         *int
	Notes          string
	CaloriesBurned *int
}

// ExerciseProgress records one set during a running session.
type ExerciseProgress struct {
	ExerciseID  primitive.ObjectID
	Reps        int
	Weight      *float64
	Duration    *int
	RestSeconds int
	Notes       string
	Completed   bool
}

type WorkoutSessionService interface {
	StartSession(ctx context.Context, req StartSessionRequest) (*domain.WorkoutSession, error)
	PauseSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	ResumeSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	CompleteSession(ctx context.Context, id primitive.ObjectID, req CompleteSessionRequest) (*domain.WorkoutSession, error)
	CancelSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	RecordExerciseProgress(ctx context.Context, id primitive.ObjectID, p ExerciseProgress) (*domain.WorkoutSession, error)

	GetSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	ListSessionsForMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutSession, error)
	ListSessionsForPlan(ctx context.Context, planID primitive.ObjectID) ([]domain.WorkoutSession, error)
	ListSessionsInRange(ctx context.Context, memberID primitive.ObjectID, from, to time.Time) ([]domain.WorkoutSession, error)
	// GetActiveSession returns the member's in-progress or paused session, or nil.
	GetActiveSession(ctx context.Context, memberID primitive.ObjectID) (*domain.WorkoutSession, error)
	GetStatistics(ctx context.Context, memberID primitive.ObjectID) (*domain.SessionStatistics, error)
	DeleteSession(ctx context.Context, id primitive.ObjectID) error
}

type workoutSessionService struct {
	sessionRepo repository.WorkoutSessionRepository
	planRepo    repository.WorkoutPlanRepository
	publisher   events.Publisher
	locks       *ownerLocks
	logger      *zap.Logger
	now         clock
}

func NewWorkoutSessionService(
	sessionRepo repository.WorkoutSessionRepository,
	planRepo repository.WorkoutPlanRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) WorkoutSessionService {
	return &workoutSessionService{
		sessionRepo: sessionRepo,
		planRepo:    planRepo,
		publisher:   publisher,
		locks:       newOwnerLocks(),
		logger:      logger.Named("workout_session_service"),
		now:         utcNow,
	}
}

// StartSession creates an in-progress session. A member can only have one
// session in progress or paused at a time.
func (s *workoutSessionService) StartSession(ctx context.Context, req StartSessionRequest) (*domain.WorkoutSession, error) {
	if err := requireID(req.MemberID, "member ID"); err != nil {
		return nil, err
	}
	if err := requireID(req.PlanID, "workout plan ID"); err != nil {
		return nil, err
	}

	// The plan supplies the gym
	plan, err := s.planRepo.GetByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutPlanNotFound
		}
		return nil, err
	}
	if plan.MemberID != req.MemberID {
		return nil, validationError("workout plan %s does not belong to member %s", req.PlanID.Hex(), req.MemberID.Hex())
	}

	now := s.now()
	start := req.StartTime
	if start.IsZero() {
		start = now
	}
	sessionDate := req.SessionDate
	if sessionDate.IsZero() {
		sessionDate = start
	}

	session := &domain.WorkoutSession{
		MemberID:      req.MemberID,
		WorkoutPlanID: req.PlanID,
		GymID:         plan.GymID,
		SessionDate:   sessionDate,
		StartTime:     &start,
		Exercises:     plannedExercises(plan),
	}
	session.SetState(schedule.SessionPlanned)
	if err := session.Apply(schedule.EventStart); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(req.MemberID.Hex())
	defer unlock()

	existing, err := s.sessionRepo.ListByMemberAndStates(ctx, req.MemberID, activeSessionStates)
	if err != nil {
		return nil, err
	}
	records := make([]schedule.SessionRecord, 0, len(existing))
	for i := range existing {
		records = append(records, existing[i].Record())
	}
	if decision := schedule.CanStartSession(req.MemberID.Hex(), records); !decision.Accepted {
		s.logger.Info("Workout session rejected",
			zap.String("memberId", req.MemberID.Hex()),
			zap.String("conflictingSessionId", decision.ConflictingID),
		)
		return nil, decision.Err()
	}

	id, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		// Another process won the race; the unique index caught it.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, schedule.Reject(schedule.ReasonActiveSessionExists, "").Err()
		}
		return nil, err
	}
	session.ID = id

	s.logger.Info("Workout session started", zap.String("sessionId", id.Hex()), zap.String("memberId", req.MemberID.Hex()))
	publish(ctx, s.publisher, s.logger, events.WorkoutSessionStarted, id.Hex(), session)
	return session, nil
}

func plannedExercises(plan *domain.WorkoutPlan) []domain.SessionExercise {
	out := make([]domain.SessionExercise, 0, len(plan.Exercises))
	for _, e := range plan.Exercises {
		out = append(out, domain.SessionExercise{
			ExerciseID:    e.ExerciseID,
			PlannedSets:   e.Sets,
			CompletedSets: []domain.CompletedSet{},
		})
	}
	return out
}

// transition loads the session, applies e and persists the result. The
// write only lands if the stored state is still the one e was applied to.
func (s *workoutSessionService) transition(ctx context.Context, id primitive.ObjectID, e schedule.SessionEvent, mutate func(*domain.WorkoutSession)) (*domain.WorkoutSession, error) {
	unlock := s.locks.lock(id.Hex())
	defer unlock()

	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	from := session.State
	if err := session.Apply(e); err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(session)
	}
	if err := s.save(ctx, session, from); err != nil {
		return nil, err
	}
	s.logger.Info("Workout session transition",
		zap.String("sessionId", id.Hex()),
		zap.String("event", string(e)),
		zap.String("state", string(session.State)),
	)
	return session, nil
}

func (s *workoutSessionService) PauseSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	return s.transition(ctx, id, schedule.EventPause, nil)
}

// ResumeSession moves a paused session back to in progress.
func (s *workoutSessionService) ResumeSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	return s.transition(ctx, id, schedule.EventResume, nil)
}

func (s *workoutSessionService) CompleteSession(ctx context.Context, id primitive.ObjectID, req CompleteSessionRequest) (*domain.WorkoutSession, error) {
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, validationError("rating must be between 1 and 5")
	}
	if req.CaloriesBurned != nil && *req.CaloriesBurned < 0 {
		return nil, validationError("calories burned cannot be negative")
	}
	for _, e := range req.Exercises {
		if e.Rating != nil && (*e.Rating < 1 || *e.Rating > 5) {
			return nil, validationError("exercise rating must be between 1 and 5")
		}
	}

	session, err := s.transition(ctx, id, schedule.EventComplete, func(ws *domain.WorkoutSession) {
		end := req.EndTime
		if end.IsZero() {
			end = s.now()
		}
		ws.EndTime = &end
		ws.OverallRating = req.Rating
		ws.CaloriesBurned = req.CaloriesBurned
		if req.Notes != "" {
			ws.Notes = req.Notes
		}
		if len(req.Exercises) > 0 {
			ws.Exercises = completedExercises(req.Exercises)
		}
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, s.logger, events.WorkoutSessionCompleted, id.Hex(), session)
	return session, nil
}

func completedExercises(in []CompletedExercise) []domain.SessionExercise {
	out := make([]domain.SessionExercise, 0, len(in))
	for _, e := range in {
		planned := e.SetsCompleted
		if planned <= 0 {
			planned = 1
		}
		rest := e.RestSeconds
		if rest == 0 {
			rest = domain.DefaultRestSeconds
		}
		sets := make([]domain.CompletedSet, 0, planned)
		for i := 0; i < planned; i++ {
			sets = append(sets, domain.CompletedSet{
				Reps:        e.RepsCompleted,
				Weight:      e.Weight,
				Duration:    e.Duration,
				RestSeconds: rest,
				Completed:   true,
			})
		}
		out = append(out, domain.SessionExercise{
			ExerciseID:    e.ExerciseID,
			PlannedSets:   planned,
			CompletedSets: sets,
			Notes:         e.Notes,
			Rating:        e.Rating,
		})
	}
	return out
}

func (s *workoutSessionService) CancelSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	session, err := s.transition(ctx, id, schedule.EventCancel, func(ws *domain.WorkoutSession) {
		end := s.now()
		ws.EndTime = &end
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, s.logger, events.WorkoutSessionCancelled, id.Hex(), session)
	return session, nil
}

func (s *workoutSessionService) RecordExerciseProgress(ctx context.Context, id primitive.ObjectID, p ExerciseProgress) (*domain.WorkoutSession, error) {
	if err := requireID(p.ExerciseID, "exercise ID"); err != nil {
		return nil, err
	}
	if p.Reps < 0 {
		return nil, validationError("reps cannot be negative")
	}
	unlock := s.locks.lock(id.Hex())
	defer unlock()

	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.State != schedule.SessionInProgress {
		return nil, ErrSessionNotInProgress
	}
	session.AddSet(p.ExerciseID, domain.CompletedSet{
		Reps:        p.Reps,
		Weight:      p.Weight,
		Duration:    p.Duration,
		RestSeconds: p.RestSeconds,
		Completed:   p.Completed,
	}, p.Notes)
	if err := s.save(ctx, session, schedule.SessionInProgress); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *workoutSessionService) GetSession(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	if err := requireID(id, "workout session ID"); err != nil {
		return nil, err
	}
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *workoutSessionService) ListSessionsForMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	if err := requireID(memberID, "member ID"); err != nil {
		return nil, err
	}
	return s.sessionRepo.ListByMember(ctx, memberID)
}

func (s *workoutSessionService) ListSessionsForPlan(ctx context.Context, planID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	if err := requireID(planID, "workout plan ID"); err != nil {
		return nil, err
	}
	return s.sessionRepo.ListByPlan(ctx, planID)
}

func (s *workoutSessionService) ListSessionsInRange(ctx context.Context, memberID primitive.ObjectID, from, to time.Time) ([]domain.WorkoutSession, error) {
	if err := requireID(memberID, "member ID"); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, validationError("range end is before range start")
	}
	return s.sessionRepo.ListByMemberInRange(ctx, memberID, from, to)
}

func (s *workoutSessionService) GetActiveSession(ctx context.Context, memberID primitive.ObjectID) (*domain.WorkoutSession, error) {
	if err := requireID(memberID, "member ID"); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByMemberAndStates(ctx, memberID, activeSessionStates)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

func (s *workoutSessionService) GetStatistics(ctx context.Context, memberID primitive.ObjectID) (*domain.SessionStatistics, error) {
	if err := requireID(memberID, "member ID"); err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	stats := domain.ComputeStatistics(sessions)
	return &stats, nil
}

func (s *workoutSessionService) DeleteSession(ctx context.Context, id primitive.ObjectID) error {
	if err := requireID(id, "workout session ID"); err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutSessionNotFound
		}
		return err
	}
	return nil
}

// save writes session if its stored state still equals from.
func (s *workoutSessionService) save(ctx context.Context, session *domain.WorkoutSession, from schedule.SessionState) error {
	if err := s.sessionRepo.Update(ctx, session, from); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrWorkoutSessionNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return schedule.Reject(schedule.ReasonActiveSessionExists, "").Err()
		case errors.Is(err, repository.ErrStaleState):
			s.logger.Info("Workout session changed concurrently",
				zap.String("sessionId", session.ID.Hex()),
				zap.String("expectedState", string(from)),
			)
			return fmt.Errorf("%w: session %s is no longer %s", schedule.ErrInvalidTransition, session.ID.Hex(), from)
		}
		return err
	}
	return nil
}
