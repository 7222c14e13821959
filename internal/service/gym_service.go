package service

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrGymNotFound   = errors.New("gym not found")
	ErrGymEmailTaken = errors.New("a gym with this email already exists")
)

// GymInput carries the writable fields of a gym.
type GymInput struct {
	Name           string
	Address        domain.Address
	Phone          string
	Email          string
	OperatingHours domain.OperatingHours
	Facilities     []string
	MaxCapacity    int
}

type GymService interface {
	CreateGym(ctx context.Context, in GymInput) (*domain.Gym, error)
	GetGym(ctx context.Context, id primitive.ObjectID) (*domain.Gym, error)
	ListGyms(ctx context.Context, activeOnly bool) ([]domain.Gym, error)
	ListGymsByCity(ctx context.Context, city string) ([]domain.Gym, error)
	UpdateGym(ctx context.Context, id primitive.ObjectID, in GymInput) (*domain.Gym, error)
	SetGymActive(ctx context.Context, id primitive.ObjectID, active bool) (*domain.Gym, error)
	DeleteGym(ctx context.Context, id primitive.ObjectID) error

	// IsGymOpen reports whether the gym is open on day ("monday".."sunday") at clock ("HH:MM").
	IsGymOpen(ctx context.Context, id primitive.ObjectID, day, clock string) (bool, error)
	// CheckCapacity reports whether another visitor fits with current people inside.
	CheckCapacity(ctx context.Context, id primitive.ObjectID, current int) (bool, error)
}

type gymService struct {
	gymRepo repository.GymRepository
	logger  *zap.Logger
}

func NewGymService(gymRepo repository.GymRepository, logger *zap.Logger) GymService {
	return &gymService{
		gymRepo: gymRepo,
		logger:  logger.Named("gym_service"),
	}
}

func validateGymInput(in GymInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return validationError("gym name cannot be empty")
	case strings.TrimSpace(in.Email) == "":
		return validationError("gym email cannot be empty")
	case strings.TrimSpace(in.Phone) == "":
		return validationError("gym phone cannot be empty")
	case in.MaxCapacity <= 0:
		return validationError("gym capacity must be positive")
	case len(in.Facilities) == 0:
		return validationError("gym must have at least one facility")
	}
	// Every open day must carry a well formed range.
	if _, err := in.OperatingHours.Weekly(); err != nil {
		return err
	}
	return nil
}

func (s *gymService) CreateGym(ctx context.Context, in GymInput) (*domain.Gym, error) {
	if err := validateGymInput(in); err != nil {
		return nil, err
	}

	gym := &domain.Gym{
		Name:           strings.TrimSpace(in.Name),
		Address:        in.Address,
		Phone:          in.Phone,
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		OperatingHours: in.OperatingHours,
		Facilities:     in.Facilities,
		MaxCapacity:    in.MaxCapacity,
		IsActive:       true,
	}
	id, err := s.gymRepo.Create(ctx, gym)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrGymEmailTaken
		}
		return nil, err
	}
	gym.ID = id
	s.logger.Info("Gym created", zap.String("gymId", id.Hex()), zap.String("name", gym.Name))
	return gym, nil
}

func (s *gymService) GetGym(ctx context.Context, id primitive.ObjectID) (*domain.Gym, error) {
	if err := requireID(id, "gym ID"); err != nil {
		return nil, err
	}
	gym, err := s.gymRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return gym, nil
}

func (s *gymService) ListGyms(ctx context.Context, activeOnly bool) ([]domain.Gym, error) {
	if activeOnly {
		return s.gymRepo.ListActive(ctx)
	}
	return s.gymRepo.List(ctx)
}

func (s *gymService) ListGymsByCity(ctx context.Context, city string) ([]domain.Gym, error) {
	if strings.TrimSpace(city) == "" {
		return nil, validationError("city is required")
	}
	return s.gymRepo.ListByCity(ctx, city)
}

func (s *gymService) UpdateGym(ctx context.Context, id primitive.ObjectID, in GymInput) (*domain.Gym, error) {
	if err := validateGymInput(in); err != nil {
		return nil, err
	}
	gym, err := s.GetGym(ctx, id)
	if err != nil {
		return nil, err
	}

	gym.Name = strings.TrimSpace(in.Name)
	gym.Address = in.Address
	gym.Phone = in.Phone
	gym.Email = strings.ToLower(strings.TrimSpace(in.Email))
	gym.OperatingHours = in.OperatingHours
	gym.Facilities = in.Facilities
	gym.MaxCapacity = in.MaxCapacity

	if err := s.gymRepo.Update(ctx, gym); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrGymNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrGymEmailTaken
		}
		return nil, err
	}
	return gym, nil
}

func (s *gymService) SetGymActive(ctx context.Context, id primitive.ObjectID, active bool) (*domain.Gym, error) {
	gym, err := s.GetGym(ctx, id)
	if err != nil {
		return nil, err
	}
	if gym.IsActive == active {
		return gym, nil
	}
	gym.IsActive = active
	if err := s.gymRepo.Update(ctx, gym); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	s.logger.Info("Gym status changed", zap.String("gymId", id.Hex()), zap.Bool("active", active))
	return gym, nil
}

func (s *gymService) DeleteGym(ctx context.Context, id primitive.ObjectID) error {
	if err := requireID(id, "gym ID"); err != nil {
		return err
	}
	if err := s.gymRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGymNotFound
		}
		return err
	}
	s.logger.Info("Gym deleted", zap.String("gymId", id.Hex()))
	return nil
}

func (s *gymService) IsGymOpen(ctx context.Context, id primitive.ObjectID, day, clock string) (bool, error) {
	gym, err := s.GetGym(ctx, id)
	if err != nil {
		return false, err
	}
	hours, err := gym.OperatingHours.Weekly()
	if err != nil {
		// Stored data, not the caller's input, is broken here.
		s.logger.Error("Gym has malformed operating hours", zap.String("gymId", id.Hex()), zap.Error(err))
		return false, fmt.Errorf("gym %s operating hours: %v", id.Hex(), err)
	}
	return hours.IsOpenAt(day, clock)
}

func (s *gymService) CheckCapacity(ctx context.Context, id primitive.ObjectID, current int) (bool, error) {
	if current < 0 {
		return false, validationError("current occupancy cannot be negative")
	}
	gym, err := s.GetGym(ctx, id)
	if err != nil {
		return false, err
	}
	return gym.IsWithinCapacity(current), nil
}
