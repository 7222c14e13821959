package service

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/repository"
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseNameTaken    = errors.New("an exercise with this name already exists")
	ErrExerciseAccessDenied = errors.New("access denied to modify or delete this exercise")
)

var exerciseCategories = map[string]bool{
	"cardio":      true,
	"strength":    true,
	"flexibility": true,
	"sports":      true,
}

// ExerciseInput carries the writable fields of an exercise.
type ExerciseInput struct {
	Name                       string
	Description                string
	Category                   string
	MuscleGroups               []string
	Equipment                  []string
	Difficulty                 string
	Instructions               []string
	Tips                       []string
	Warnings                   []string
	ImageURL                   string
	VideoURL                   string
	EstimatedCaloriesPerMinute *float64
}

// ExerciseQuery extends the repository filter with checks that run in memory.
type ExerciseQuery struct {
	domain.ExerciseFilter
	BodyweightOnly bool
}

type ExerciseService interface {
	// CreateExercise adds an exercise. createdBy is the authoring trainer, nil for built-ins.
	CreateExercise(ctx context.Context, createdBy *primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context, q ExerciseQuery) ([]domain.Exercise, error)
	// UpdateExercise changes an exercise. A non-nil trainerID must match the author.
	UpdateExercise(ctx context.Context, trainerID *primitive.ObjectID, exerciseID primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error)
	SetExerciseActive(ctx context.Context, exerciseID primitive.ObjectID, active bool) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, trainerID *primitive.ObjectID, exerciseID primitive.ObjectID) error
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	trainerRepo  repository.TrainerRepository
	logger       *zap.Logger
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, trainerRepo repository.TrainerRepository, logger *zap.Logger) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		trainerRepo:  trainerRepo,
		logger:       logger.Named("exercise_service"),
	}
}

func validateExerciseInput(in ExerciseInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return validationError("exercise name is required")
	case !exerciseCategories[in.Category]:
		return validationError("invalid exercise category %q", in.Category)
	case !domain.IsValidDifficulty(in.Difficulty):
		return validationError("invalid difficulty %q", in.Difficulty)
	case len(in.MuscleGroups) == 0:
		return validationError("at least one muscle group is required")
	case len(in.Instructions) == 0:
		return validationError("at least one instruction is required")
	case in.EstimatedCaloriesPerMinute != nil && *in.EstimatedCaloriesPerMinute < 0:
		return validationError("calories per minute cannot be negative")
	}
	return nil
}

func applyExerciseInput(e *domain.Exercise, in ExerciseInput) {
	e.Name = strings.TrimSpace(in.Name)
	e.Description = in.Description
	e.Category = in.Category
	e.MuscleGroups = in.MuscleGroups
	e.Equipment = in.Equipment
	e.Difficulty = in.Difficulty
	e.Instructions = in.Instructions
	e.Tips = in.Tips
	e.Warnings = in.Warnings
	e.ImageURL = in.ImageURL
	e.VideoURL = in.VideoURL
	e.EstimatedCaloriesPerMinute = in.EstimatedCaloriesPerMinute
	if e.Equipment == nil {
		e.Equipment = []string{}
	}
}

// CreateExercise handles the creation of a new exercise.
func (s *exerciseService) CreateExercise(ctx context.Context, createdBy *primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error) {
	if err := validateExerciseInput(in); err != nil {
		return nil, err
	}
	if createdBy != nil {
		if _, err := s.trainerRepo.GetByID(ctx, *createdBy); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrTrainerNotFound
			}
			return nil, err
		}
	}

	exercise := &domain.Exercise{CreatedBy: createdBy, IsActive: true}
	applyExerciseInput(exercise, in)

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrExerciseNameTaken
		}
		return nil, err
	}
	exercise.ID = exerciseID
	s.logger.Info("Exercise created", zap.String("exerciseId", exerciseID.Hex()), zap.String("name", exercise.Name))
	return exercise, nil
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	if err := requireID(exerciseID, "exercise ID"); err != nil {
		return nil, err
	}
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err // Propagate other repository errors
	}
	return exercise, nil
}

func (s *exerciseService) ListExercises(ctx context.Context, q ExerciseQuery) ([]domain.Exercise, error) {
	if q.Difficulty != "" && !domain.IsValidDifficulty(q.Difficulty) {
		return nil, validationError("invalid difficulty %q", q.Difficulty)
	}
	exercises, err := s.exerciseRepo.List(ctx, q.ExerciseFilter)
	if err != nil {
		return nil, err
	}
	if !q.BodyweightOnly {
		return exercises, nil
	}
	filtered := exercises[:0]
	for _, e := range exercises {
		if e.IsBodyweight() {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// checkAuthor enforces that only the authoring trainer edits trainer-made exercises.
func checkAuthor(e *domain.Exercise, trainerID *primitive.ObjectID) error {
	if trainerID == nil {
		return nil
	}
	if e.CreatedBy == nil || *e.CreatedBy != *trainerID {
		return ErrExerciseAccessDenied
	}
	return nil
}

// UpdateExercise handles updating an existing exercise, ensuring ownership.
func (s *exerciseService) UpdateExercise(ctx context.Context, trainerID *primitive.ObjectID, exerciseID primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error) {
	if err := validateExerciseInput(in); err != nil {
		return nil, err
	}
	existing, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if err := checkAuthor(existing, trainerID); err != nil {
		return nil, err
	}

	applyExerciseInput(existing, in)
	return s.save(ctx, existing)
}

func (s *exerciseService) SetExerciseActive(ctx context.Context, exerciseID primitive.ObjectID, active bool) (*domain.Exercise, error) {
	existing, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	existing.IsActive = active
	return s.save(ctx, existing)
}

func (s *exerciseService) save(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	if err := s.exerciseRepo.Update(ctx, e); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrExerciseNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrExerciseNameTaken
		}
		return nil, err
	}
	return e, nil
}

// DeleteExercise handles deleting an exercise, ensuring ownership.
func (s *exerciseService) DeleteExercise(ctx context.Context, trainerID *primitive.ObjectID, exerciseID primitive.ObjectID) error {
	existing, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return err
	}
	if err := checkAuthor(existing, trainerID); err != nil {
		return err
	}
	if err := s.exerciseRepo.Delete(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	s.logger.Info("Exercise deleted", zap.String("exerciseId", exerciseID.Hex()))
	return nil
}
