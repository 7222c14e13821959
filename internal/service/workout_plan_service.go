package service

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/events"
	"alcyxob/gymflow/internal/repository"
	"alcyxob/gymflow/internal/schedule"
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrWorkoutPlanNotFound = errors.New("workout plan not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrPlanExpired         = errors.New("workout plan has already ended")
	ErrPlanExerciseExists  = errors.New("exercise is already part of the plan")
	ErrPlanExerciseMissing = errors.New("exercise is not part of the plan")
)

// CreatePlanRequest carries everything needed to create a plan. EndDate is
// optional; when nil it is derived from StartDate and DurationWeeks.
type CreatePlanRequest struct {
	MemberID      primitive.ObjectID
	TrainerID     primitive.ObjectID
	GymID         primitive.ObjectID // defaults to the trainer's gym
	Name          string
	Description   string
	Goal          string
	DurationWeeks int
	Difficulty    string
	Exercises     []domain.PlanExercise
	Schedule      domain.PlanSchedule
	StartDate     time.Time
	EndDate       *time.Time
}

// UpdatePlanRequest changes plan metadata. Dates and owner are immutable.
type UpdatePlanRequest struct {
	Name        *string
	Description *string
	Goal        *string
	Difficulty  *string
	Exercises   []domain.PlanExercise
	Schedule    *domain.PlanSchedule
}

type WorkoutPlanService interface {
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*domain.WorkoutPlan, error)
	GetPlan(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	ListPlansForMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	ListPlansForTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	ListActivePlansForMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, id primitive.ObjectID, req UpdatePlanRequest) (*domain.WorkoutPlan, error)
	ActivatePlan(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	DeactivatePlan(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	AddExercise(ctx context.Context, id primitive.ObjectID, ex domain.PlanExercise) (*domain.WorkoutPlan, error)
	RemoveExercise(ctx context.Context, id, exerciseID primitive.ObjectID) (*domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, id primitive.ObjectID) error
}

type workoutPlanService struct {
	planRepo     repository.WorkoutPlanRepository
	memberRepo   repository.MemberRepository
	trainerRepo  repository.TrainerRepository
	exerciseRepo repository.ExerciseRepository
	publisher    events.Publisher
	locks        *ownerLocks
	logger       *zap.Logger
	now          clock
}

func NewWorkoutPlanService(
	planRepo repository.WorkoutPlanRepository,
	memberRepo repository.MemberRepository,
	trainerRepo repository.TrainerRepository,
	exerciseRepo repository.ExerciseRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) WorkoutPlanService {
	return &workoutPlanService{
		planRepo:     planRepo,
		memberRepo:   memberRepo,
		trainerRepo:  trainerRepo,
		exerciseRepo: exerciseRepo,
		publisher:    publisher,
		locks:        newOwnerLocks(),
		logger:       logger.Named("workout_plan_service"),
		now:          utcNow,
	}
}

func validateCreatePlan(req CreatePlanRequest) error {
	if err := requireID(req.MemberID, "member ID"); err != nil {
		return err
	}
	if err := requireID(req.TrainerID, "trainer ID"); err != nil {
		return err
	}
	switch {
	case strings.TrimSpace(req.Name) == "":
		return validationError("workout plan name cannot be empty")
	case strings.TrimSpace(req.Description) == "":
		return validationError("workout plan description cannot be empty")
	case req.DurationWeeks <= 0:
		return schedule.ErrInvalidDuration
	case len(req.Exercises) == 0:
		return validationError("workout plan must have at least one exercise")
	case req.StartDate.IsZero():
		return validationError("start date is required")
	}
	if err := validateDifficulty(req.Difficulty); err != nil {
		return err
	}
	return validatePlanSchedule(req.Schedule)
}

func validateDifficulty(d string) error {
	if !domain.IsValidDifficulty(strings.ToLower(d)) {
		return validationError("invalid difficulty level %q, must be beginner, intermediate, or advanced", d)
	}
	return nil
}

func validatePlanSchedule(sch domain.PlanSchedule) error {
	if sch.DaysPerWeek <= 0 || sch.DaysPerWeek > schedule.DaysInWeek {
		return validationError("days per week must be between 1 and 7")
	}
	for _, d := range sch.PreferredDays {
		if _, err := schedule.ParseWeekday(d); err != nil {
			return err
		}
	}
	return nil
}

// planRange derives the plan's validity period. An explicit end date must
// lie after the start and takes precedence over the duration.
func planRange(req CreatePlanRequest) (schedule.DateRange, error) {
	if req.EndDate != nil {
		return schedule.NewDateRange(req.StartDate, *req.EndDate)
	}
	return schedule.ComputeEndDate(req.StartDate, req.DurationWeeks)
}

func (s *workoutPlanService) CreatePlan(ctx context.Context, req CreatePlanRequest) (*domain.WorkoutPlan, error) {
	// 1. Validate Input
	if err := validateCreatePlan(req); err != nil {
		return nil, err
	}
	dates, err := planRange(req)
	if err != nil {
		return nil, err
	}

	// 2. Member and trainer must exist
	member, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	trainer, err := s.trainerRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	gymID := req.GymID
	if gymID == primitive.NilObjectID {
		gymID = trainer.GymID
	}

	plan := &domain.WorkoutPlan{
		MemberID:      req.MemberID,
		TrainerID:     req.TrainerID,
		GymID:         gymID,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Goal:          req.Goal,
		DurationWeeks: req.DurationWeeks,
		Difficulty:    strings.ToLower(req.Difficulty),
		Exercises:     numberExercises(req.Exercises),
		Schedule:      req.Schedule,
		StartDate:     dates.Start,
		EndDate:       dates.End,
		IsActive:      true,
	}

	// 3. Overlap check and insert happen under the member's lock
	unlock := s.locks.lock(req.MemberID.Hex())
	defer unlock()

	if err := s.checkOverlap(ctx, plan); err != nil {
		return nil, err
	}
	id, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id

	s.logger.Info("Workout plan created",
		zap.String("planId", id.Hex()),
		zap.String("memberId", req.MemberID.Hex()),
		zap.Time("startDate", plan.StartDate),
		zap.Time("endDate", plan.EndDate),
	)
	publish(ctx, s.publisher, s.logger, events.WorkoutPlanActivated, id.Hex(), plan)
	notify(ctx, s.publisher, s.logger, events.NotificationPlanDone, map[string]any{
		"email":    member.Email,
		"name":     member.Name,
		"planId":   id.Hex(),
		"planName": plan.Name,
	})
	return plan, nil
}

// checkOverlap runs the plan policy against the member's active plans.
// Callers must hold the member's lock.
func (s *workoutPlanService) checkOverlap(ctx context.Context, plan *domain.WorkoutPlan) error {
	existing, err := s.planRepo.ListActiveByMember(ctx, plan.MemberID, s.now())
	if err != nil {
		return err
	}
	records := make([]schedule.PlanRecord, 0, len(existing))
	for i := range existing {
		records = append(records, existing[i].PlanRecord())
	}
	candidate := plan.PlanRecord()
	candidate.Active = true
	if decision := schedule.CanActivateWorkoutPlan(candidate, records); !decision.Accepted {
		s.logger.Info("Workout plan rejected",
			zap.String("memberId", plan.MemberID.Hex()),
			zap.String("reason", string(decision.Reason)),
			zap.String("conflictingPlanId", decision.ConflictingID),
		)
		return decision.Err()
	}
	return nil
}

func numberExercises(in []domain.PlanExercise) []domain.PlanExercise {
	out := make([]domain.PlanExercise, len(in))
	for i, e := range in {
		if e.RestSeconds == 0 {
			e.RestSeconds = domain.DefaultRestSeconds
		}
		e.Order = i + 1
		out[i] = e
	}
	return out
}

func (s *workoutPlanService) GetPlan(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	if err := requireID(id, "workout plan ID"); err != nil {
		return nil, err
	}
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *workoutPlanService) ListPlansForMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	if err := requireID(memberID, "member ID"); err != nil {
		return nil, err
	}
	return s.planRepo.ListByMember(ctx, memberID)
}

func (s *workoutPlanService) ListPlansForTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	if err := requireID(trainerID, "trainer ID"); err != nil {
		return nil, err
	}
	return s.planRepo.ListByTrainer(ctx, trainerID)
}

func (s *workoutPlanService) ListActivePlansForMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	if err := requireID(memberID, "member ID"); err != nil {
		return nil, err
	}
	return s.planRepo.ListActiveByMember(ctx, memberID, s.now())
}

func (s *workoutPlanService) UpdatePlan(ctx context.Context, id primitive.ObjectID, req UpdatePlanRequest) (*domain.WorkoutPlan, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, validationError("workout plan name cannot be empty")
	}
	if req.Difficulty != nil {
		if err := validateDifficulty(*req.Difficulty); err != nil {
			return nil, err
		}
	}
	if req.Schedule != nil {
		if err := validatePlanSchedule(*req.Schedule); err != nil {
			return nil, err
		}
	}
	if req.Exercises != nil && len(req.Exercises) == 0 {
		return nil, validationError("workout plan must have at least one exercise")
	}

	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		plan.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Goal != nil {
		plan.Goal = *req.Goal
	}
	if req.Difficulty != nil {
		plan.Difficulty = strings.ToLower(*req.Difficulty)
	}
	if req.Exercises != nil {
		plan.Exercises = numberExercises(req.Exercises)
	}
	if req.Schedule != nil {
		plan.Schedule = *req.Schedule
	}
	return s.save(ctx, plan)
}

// ActivatePlan re-enables a plan if no other active plan of the member
// overlaps its dates.
func (s *workoutPlanService) ActivatePlan(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.IsActive {
		return plan, nil
	}
	if plan.IsExpired(s.now()) {
		return nil, ErrPlanExpired
	}

	unlock := s.locks.lock(plan.MemberID.Hex())
	defer unlock()

	if err := s.checkOverlap(ctx, plan); err != nil {
		return nil, err
	}
	if err := s.setActive(ctx, plan, true); err != nil {
		return nil, err
	}
	s.logger.Info("Workout plan activated", zap.String("planId", id.Hex()))
	publish(ctx, s.publisher, s.logger, events.WorkoutPlanActivated, id.Hex(), plan)
	return plan, nil
}

func (s *workoutPlanService) DeactivatePlan(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return plan, nil
	}

	unlock := s.locks.lock(plan.MemberID.Hex())
	defer unlock()

	if err := s.setActive(ctx, plan, false); err != nil {
		return nil, err
	}
	s.logger.Info("Workout plan deactivated", zap.String("planId", id.Hex()))
	return plan, nil
}

func (s *workoutPlanService) AddExercise(ctx context.Context, id primitive.ObjectID, ex domain.PlanExercise) (*domain.WorkoutPlan, error) {
	if err := requireID(ex.ExerciseID, "exercise ID"); err != nil {
		return nil, err
	}
	if ex.Sets <= 0 {
		return nil, validationError("sets must be positive")
	}
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.HasExercise(ex.ExerciseID) {
		return nil, ErrPlanExerciseExists
	}
	if _, err := s.exerciseRepo.GetByID(ctx, ex.ExerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	plan.Exercises = numberExercises(append(plan.Exercises, ex))
	return s.save(ctx, plan)
}

func (s *workoutPlanService) RemoveExercise(ctx context.Context, id, exerciseID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if !plan.HasExercise(exerciseID) {
		return nil, ErrPlanExerciseMissing
	}
	if len(plan.Exercises) == 1 {
		return nil, validationError("workout plan must have at least one exercise")
	}
	kept := make([]domain.PlanExercise, 0, len(plan.Exercises)-1)
	for _, e := range plan.Exercises {
		if e.ExerciseID != exerciseID {
			kept = append(kept, e)
		}
	}
	plan.Exercises = numberExercises(kept)
	return s.save(ctx, plan)
}

func (s *workoutPlanService) DeletePlan(ctx context.Context, id primitive.ObjectID) error {
	if err := requireID(id, "workout plan ID"); err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutPlanNotFound
		}
		return err
	}
	s.logger.Info("Workout plan deleted", zap.String("planId", id.Hex()))
	return nil
}

// setActive persists the activation flag. Callers must hold the member's lock.
func (s *workoutPlanService) setActive(ctx context.Context, plan *domain.WorkoutPlan, active bool) error {
	if err := s.planRepo.SetActive(ctx, plan.ID, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutPlanNotFound
		}
		return err
	}
	plan.IsActive = active
	return nil
}

func (s *workoutPlanService) save(ctx context.Context, plan *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}
