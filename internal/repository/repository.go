package repository

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/schedule"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks alcyxob/gymflow/internal/repository GymRepository,TrainerRepository,ExerciseRepository,WorkoutPlanRepository,WorkoutSessionRepository,MemberRepository

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
	ErrStaleState   = RepositoryError("stored state changed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// GymRepository defines the interface for interacting with gym data.
type GymRepository interface {
	Create(ctx context.Context, gym *domain.Gym) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Gym, error)
	List(ctx context.Context) ([]domain.Gym, error)
	ListByCity(ctx context.Context, city string) ([]domain.Gym, error)
	ListActive(ctx context.Context) ([]domain.Gym, error)
	Update(ctx context.Context, gym *domain.Gym) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TrainerRepository defines the interface for interacting with trainer data.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Trainer, error)
	ListByGym(ctx context.Context, gymID primitive.ObjectID) ([]domain.Trainer, error)
	ListActiveByGym(ctx context.Context, gymID primitive.ObjectID) ([]domain.Trainer, error)
	ListBySpecialty(ctx context.Context, specialty string) ([]domain.Trainer, error)
	Update(ctx context.Context, trainer *domain.Trainer) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	List(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutPlanRepository defines the interface for interacting with workout plan data.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error)
	ListByMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	ListByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.WorkoutPlan, error)
	// ListActiveByMember returns plans with isActive set whose end date is not before now.
	ListActiveByMember(ctx context.Context, memberID primitive.ObjectID, now time.Time) ([]domain.WorkoutPlan, error)
	// Update writes the plan's descriptive fields. It never touches isActive.
	Update(ctx context.Context, plan *domain.WorkoutPlan) error
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutSessionRepository defines the interface for interacting with session data.
// Create and Update return ErrDuplicate when a second active session would be stored for a member.
// Update only writes when the stored state equals from and returns ErrStaleState otherwise.
type WorkoutSessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutSession, error)
	ListByMember(ctx context.Context, memberID primitive.ObjectID) ([]domain.WorkoutSession, error)
	ListByMemberAndStates(ctx context.Context, memberID primitive.ObjectID, states []schedule.SessionState) ([]domain.WorkoutSession, error)
	ListByMemberInRange(ctx context.Context, memberID primitive.ObjectID, from, to time.Time) ([]domain.WorkoutSession, error)
	ListByPlan(ctx context.Context, planID primitive.ObjectID) ([]domain.WorkoutSession, error)
	Update(ctx context.Context, session *domain.WorkoutSession, from schedule.SessionState) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MemberRepository defines the interface for interacting with member data.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	ListActive(ctx context.Context) ([]domain.Member, error)
	ListByMembership(ctx context.Context, t domain.MembershipType) ([]domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
