package service

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/repository"
	"alcyxob/gymflow/internal/schedule"
	"alcyxob/gymflow/internal/storage"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrTrainerNotFound       = errors.New("trainer not found")
	ErrTrainerEmailTaken     = errors.New("email is already in use")
	ErrCertificationNotFound = errors.New("certification not found")
	ErrObjectKeyMismatch     = errors.New("object key does not belong to this trainer")
	ErrUploadNotFound        = errors.New("uploaded file not found in storage")
	ErrUploadURLError        = errors.New("failed to generate upload URL")
	ErrDownloadURLError      = errors.New("failed to generate download URL")
)

// TrainerInput carries the fields needed to register a trainer.
type TrainerInput struct {
	GymID           primitive.ObjectID
	Name            string
	Email           string
	Phone           string
	Bio             string
	Specialties     []string
	Certifications  []domain.Certification
	ExperienceYears int
	HourlyRate      decimal.Decimal
	Availability    domain.Availability
}

// TrainerUpdate is a partial update; nil fields are left untouched.
type TrainerUpdate struct {
	Name            *string
	Phone           *string
	Bio             *string
	Specialties     []string
	ExperienceYears *int
	HourlyRate      *decimal.Decimal
	Availability    *domain.Availability
}

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // The key client needs to report back on confirm
}

type TrainerService interface {
	CreateTrainer(ctx context.Context, in TrainerInput) (*domain.Trainer, error)
	GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	ListTrainersByGym(ctx context.Context, gymID primitive.ObjectID, activeOnly bool) ([]domain.Trainer, error)
	ListTrainersBySpecialty(ctx context.Context, specialty string) ([]domain.Trainer, error)
	UpdateTrainer(ctx context.Context, id primitive.ObjectID, upd TrainerUpdate) (*domain.Trainer, error)
	SetTrainerActive(ctx context.Context, id primitive.ObjectID, active bool) (*domain.Trainer, error)
	DeleteTrainer(ctx context.Context, id primitive.ObjectID) error

	// Availability
	UpdateDayAvailability(ctx context.Context, id primitive.ObjectID, day string, isAvailable bool, start, end string) (*domain.Trainer, error)
	IsTrainerAvailableAt(ctx context.Context, id primitive.ObjectID, day, clock string) (bool, error)
	CheckSlot(ctx context.Context, id primitive.ObjectID, day, start, end string) (schedule.Decision, error)
	FindAvailableTrainers(ctx context.Context, gymID primitive.ObjectID, day, start, end string) ([]domain.Trainer, error)

	// Certifications
	AddCertification(ctx context.Context, id primitive.ObjectID, cert domain.Certification) (*domain.Trainer, error)
	RemoveCertification(ctx context.Context, id primitive.ObjectID, name string) (*domain.Trainer, error)

	// Media
	RequestProfileImageUploadURL(ctx context.Context, id primitive.ObjectID, contentType string) (*UploadURLResponse, error)
	ConfirmProfileImage(ctx context.Context, id primitive.ObjectID, objectKey string) (*domain.Trainer, error)
	GetProfileImageURL(ctx context.Context, id primitive.ObjectID) (string, error)
	RequestCertificationUploadURL(ctx context.Context, id primitive.ObjectID, certName, contentType string) (*UploadURLResponse, error)
	ConfirmCertificationDocument(ctx context.Context, id primitive.ObjectID, certName, objectKey string) (*domain.Trainer, error)
}

// trainerService implements the TrainerService interface.
type trainerService struct {
	trainerRepo repository.TrainerRepository
	gymRepo     repository.GymRepository
	fileStorage storage.FileStorage // nil when media storage is not configured
	logger      *zap.Logger
	now         clock
}

// NewTrainerService creates a new instance of trainerService. fileStorage may be nil.
func NewTrainerService(
	trainerRepo repository.TrainerRepository,
	gymRepo repository.GymRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) TrainerService {
	return &trainerService{
		trainerRepo: trainerRepo,
		gymRepo:     gymRepo,
		fileStorage: fileStorage,
		logger:      logger.Named("trainer_service"),
		now:         utcNow,
	}
}

// === Trainer Management ===

func (s *trainerService) CreateTrainer(ctx context.Context, in TrainerInput) (*domain.Trainer, error) {
	// 1. Validate Input
	if err := requireID(in.GymID, "gym ID"); err != nil {
		return nil, err
	}
	switch {
	case strings.TrimSpace(in.Name) == "":
		return nil, validationError("trainer name cannot be empty")
	case strings.TrimSpace(in.Email) == "":
		return nil, validationError("trainer email cannot be empty")
	case in.ExperienceYears < 0:
		return nil, validationError("experience cannot be negative")
	case !in.HourlyRate.IsPositive():
		return nil, validationError("hourly rate must be positive")
	case len(in.Specialties) == 0:
		return nil, validationError("at least one specialty is required")
	}
	if _, err := in.Availability.Weekly(); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	// 2. The gym must exist
	if _, err := s.gymRepo.GetByID(ctx, in.GymID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	// 3. Email must be unused
	if _, err := s.trainerRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrTrainerEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	trainer := &domain.Trainer{
		GymID:           in.GymID,
		Name:            strings.TrimSpace(in.Name),
		Email:           email,
		Phone:           in.Phone,
		Bio:             in.Bio,
		Specialties:     in.Specialties,
		Certifications:  in.Certifications,
		ExperienceYears: in.ExperienceYears,
		HourlyRate:      in.HourlyRate,
		Availability:    in.Availability,
		IsActive:        true,
	}
	if trainer.Certifications == nil {
		trainer.Certifications = []domain.Certification{}
	}

	id, err := s.trainerRepo.Create(ctx, trainer)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrTrainerEmailTaken
		}
		return nil, err
	}
	trainer.ID = id
	s.logger.Info("Trainer created", zap.String("trainerId", id.Hex()), zap.String("gymId", in.GymID.Hex()))
	return trainer, nil
}

func (s *trainerService) GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	if err := requireID(id, "trainer ID"); err != nil {
		return nil, err
	}
	trainer, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

func (s *trainerService) ListTrainersByGym(ctx context.Context, gymID primitive.ObjectID, activeOnly bool) ([]domain.Trainer, error) {
	if err := requireID(gymID, "gym ID"); err != nil {
		return nil, err
	}
	if activeOnly {
		return s.trainerRepo.ListActiveByGym(ctx, gymID)
	}
	return s.trainerRepo.ListByGym(ctx, gymID)
}

func (s *trainerService) ListTrainersBySpecialty(ctx context.Context, specialty string) ([]domain.Trainer, error) {
	if strings.TrimSpace(specialty) == "" {
		return nil, validationError("specialty is required")
	}
	return s.trainerRepo.ListBySpecialty(ctx, specialty)
}

func (s *trainerService) UpdateTrainer(ctx context.Context, id primitive.ObjectID, upd TrainerUpdate) (*domain.Trainer, error) {
	if upd.ExperienceYears != nil && *upd.ExperienceYears < 0 {
		return nil, validationError("experience cannot be negative")
	}
	if upd.HourlyRate != nil && !upd.HourlyRate.IsPositive() {
		return nil, validationError("hourly rate must be positive")
	}
	if upd.Specialties != nil && len(upd.Specialties) == 0 {
		return nil, validationError("at least one specialty is required")
	}
	if upd.Availability != nil {
		if _, err := upd.Availability.Weekly(); err != nil {
			return nil, err
		}
	}

	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, validationError("trainer name cannot be empty")
		}
		trainer.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Phone != nil {
		trainer.Phone = *upd.Phone
	}
	if upd.Bio != nil {
		trainer.Bio = *upd.Bio
	}
	if upd.Specialties != nil {
		trainer.Specialties = upd.Specialties
	}
	if upd.ExperienceYears != nil {
		trainer.ExperienceYears = *upd.ExperienceYears
	}
	if upd.HourlyRate != nil {
		trainer.HourlyRate = *upd.HourlyRate
	}
	if upd.Availability != nil {
		trainer.Availability = *upd.Availability
	}
	return s.save(ctx, trainer)
}

func (s *trainerService) SetTrainerActive(ctx context.Context, id primitive.ObjectID, active bool) (*domain.Trainer, error) {
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	if trainer.IsActive == active {
		return trainer, nil
	}
	trainer.IsActive = active
	s.logger.Info("Trainer status changed", zap.String("trainerId", id.Hex()), zap.Bool("active", active))
	return s.save(ctx, trainer)
}

func (s *trainerService) DeleteTrainer(ctx context.Context, id primitive.ObjectID) error {
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return err
	}
	if err := s.trainerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}
	// Media cleanup is best effort.
	if s.fileStorage != nil && trainer.ProfileImageKey != "" {
		if err := s.fileStorage.DeleteObject(ctx, trainer.ProfileImageKey); err != nil {
			s.logger.Warn("Failed to delete profile image", zap.String("trainerId", id.Hex()), zap.Error(err))
		}
	}
	return nil
}

func (s *trainerService) save(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if err := s.trainerRepo.Update(ctx, trainer); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrTrainerNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrTrainerEmailTaken
		}
		return nil, err
	}
	return trainer, nil
}

// === Availability ===

// UpdateDayAvailability replaces day's slots with the single window
// start-end, or clears the day when isAvailable is false.
func (s *trainerService) UpdateDayAvailability(ctx context.Context, id primitive.ObjectID, day string, isAvailable bool, start, end string) (*domain.Trainer, error) {
	weekday, err := schedule.ParseWeekday(day)
	if err != nil {
		return nil, err
	}
	var slots []domain.AvailabilitySlot
	if isAvailable {
		r, err := schedule.ParseTimeRange(start, end)
		if err != nil {
			return nil, err
		}
		slots = []domain.AvailabilitySlot{{Start: r.Start.String(), End: r.End.String()}}
	} else {
		slots = []domain.AvailabilitySlot{}
	}

	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	availability, err := trainer.Availability.WithDay(weekday, slots)
	if err != nil {
		return nil, err
	}
	trainer.Availability = availability
	return s.save(ctx, trainer)
}

// getTrainerAvailability loads and parses the trainer's weekly availability.
func (s *trainerService) getTrainerAvailability(ctx context.Context, id primitive.ObjectID) (schedule.WeeklyAvailability, error) {
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return schedule.WeeklyAvailability{}, err
	}
	avail, err := trainer.Availability.Weekly()
	if err != nil {
		s.logger.Error("Trainer has malformed availability", zap.String("trainerId", id.Hex()), zap.Error(err))
		return schedule.WeeklyAvailability{}, fmt.Errorf("trainer %s availability: %v", id.Hex(), err)
	}
	return avail, nil
}

func (s *trainerService) IsTrainerAvailableAt(ctx context.Context, id primitive.ObjectID, day, clock string) (bool, error) {
	avail, err := s.getTrainerAvailability(ctx, id)
	if err != nil {
		return false, err
	}
	return avail.IsAvailableAt(day, clock)
}

// CheckSlot decides whether [start, end] on day fits inside one of the
// trainer's slots. A rejection is a Decision, not an error.
func (s *trainerService) CheckSlot(ctx context.Context, id primitive.ObjectID, day, start, end string) (schedule.Decision, error) {
	avail, err := s.getTrainerAvailability(ctx, id)
	if err != nil {
		return schedule.Decision{}, err
	}
	return schedule.CanBookTrainerSlotAt(avail, day, start, end)
}

// FindAvailableTrainers returns the gym's active trainers that can take the
// whole requested slot.
func (s *trainerService) FindAvailableTrainers(ctx context.Context, gymID primitive.ObjectID, day, start, end string) ([]domain.Trainer, error) {
	if err := requireID(gymID, "gym ID"); err != nil {
		return nil, err
	}
	weekday, err := schedule.ParseWeekday(day)
	if err != nil {
		return nil, err
	}
	r, err := schedule.ParseTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	trainers, err := s.trainerRepo.ListActiveByGym(ctx, gymID)
	if err != nil {
		return nil, err
	}
	available := make([]domain.Trainer, 0, len(trainers))
	for _, t := range trainers {
		avail, err := t.Availability.Weekly()
		if err != nil {
			s.logger.Warn("Skipping trainer with malformed availability", zap.String("trainerId", t.ID.Hex()), zap.Error(err))
			continue
		}
		decision, err := schedule.CanBookTrainerSlot(avail, weekday, r.Start, r.End)
		if err != nil {
			return nil, err
		}
		if decision.Accepted {
			available = append(available, t)
		}
	}
	return available, nil
}

// === Certifications ===

func (s *trainerService) AddCertification(ctx context.Context, id primitive.ObjectID, cert domain.Certification) (*domain.Trainer, error) {
	if strings.TrimSpace(cert.Name) == "" || strings.TrimSpace(cert.Institution) == "" {
		return nil, validationError("certification name and institution are required")
	}
	if cert.DateObtained.IsZero() {
		return nil, validationError("certification date obtained is required")
	}
	if cert.ExpirationDate != nil && !cert.ExpirationDate.After(cert.DateObtained) {
		return nil, validationError("certification must expire after it was obtained")
	}

	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	// Same name replaces the previous entry (renewal).
	kept := trainer.Certifications[:0]
	for _, c := range trainer.Certifications {
		if !strings.EqualFold(c.Name, cert.Name) {
			kept = append(kept, c)
		}
	}
	trainer.Certifications = append(kept, cert)
	return s.save(ctx, trainer)
}

func (s *trainerService) RemoveCertification(ctx context.Context, id primitive.ObjectID, name string) (*domain.Trainer, error) {
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	idx := findCertification(trainer, name)
	if idx < 0 {
		return nil, ErrCertificationNotFound
	}
	removed := trainer.Certifications[idx]
	trainer.Certifications = append(trainer.Certifications[:idx], trainer.Certifications[idx+1:]...)
	updated, err := s.save(ctx, trainer)
	if err != nil {
		return nil, err
	}
	if s.fileStorage != nil && removed.DocumentKey != "" {
		if err := s.fileStorage.DeleteObject(ctx, removed.DocumentKey); err != nil {
			s.logger.Warn("Failed to delete certification document", zap.String("key", removed.DocumentKey), zap.Error(err))
		}
	}
	return updated, nil
}

func findCertification(trainer *domain.Trainer, name string) int {
	for i, c := range trainer.Certifications {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}

// === Media ===

func (s *trainerService) requireStorage() error {
	if s.fileStorage == nil {
		return storage.ErrStorageDisabled
	}
	return nil
}

// RequestProfileImageUploadURL issues a presigned PUT for a new profile image.
// The key is only attached to the trainer once ConfirmProfileImage is called.
func (s *trainerService) RequestProfileImageUploadURL(ctx context.Context, id primitive.ObjectID, contentType string) (*UploadURLResponse, error) {
	if err := s.requireStorage(); err != nil {
		return nil, err
	}
	if _, err := s.GetTrainer(ctx, id); err != nil {
		return nil, err
	}
	key, err := storage.TrainerProfileImageKey(id.Hex(), contentType)
	if err != nil {
		return nil, err
	}
	return s.presignUpload(ctx, key, contentType)
}

func (s *trainerService) presignUpload(ctx context.Context, key, contentType string) (*UploadURLResponse, error) {
	url, err := s.fileStorage.GeneratePresignedUploadURL(ctx, key, contentType, 0)
	if err != nil {
		s.logger.Error("Failed to presign upload", zap.String("key", key), zap.Error(err))
		return nil, ErrUploadURLError
	}
	return &UploadURLResponse{UploadURL: url, ObjectKey: key}, nil
}

// verifyUpload checks the key was issued for this trainer and the object landed.
func (s *trainerService) verifyUpload(ctx context.Context, id primitive.ObjectID, objectKey string) error {
	if err := s.requireStorage(); err != nil {
		return err
	}
	if !storage.BelongsToTrainer(objectKey, id.Hex()) {
		return ErrObjectKeyMismatch
	}
	exists, err := s.fileStorage.ObjectExists(ctx, objectKey)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUploadNotFound
	}
	return nil
}

func (s *trainerService) ConfirmProfileImage(ctx context.Context, id primitive.ObjectID, objectKey string) (*domain.Trainer, error) {
	if err := s.verifyUpload(ctx, id, objectKey); err != nil {
		return nil, err
	}
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := trainer.ProfileImageKey
	trainer.ProfileImageKey = objectKey
	updated, err := s.save(ctx, trainer)
	if err != nil {
		return nil, err
	}
	if previous != "" && previous != objectKey {
		if err := s.fileStorage.DeleteObject(ctx, previous); err != nil {
			s.logger.Warn("Failed to delete previous profile image", zap.String("key", previous), zap.Error(err))
		}
	}
	return updated, nil
}

// GetProfileImageURL returns a presigned GET for the current profile image,
// or an empty string when the trainer has none.
func (s *trainerService) GetProfileImageURL(ctx context.Context, id primitive.ObjectID) (string, error) {
	if err := s.requireStorage(); err != nil {
		return "", err
	}
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return "", err
	}
	if trainer.ProfileImageKey == "" {
		return "", nil
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, trainer.ProfileImageKey, 0)
	if err != nil {
		s.logger.Error("Failed to presign download", zap.String("key", trainer.ProfileImageKey), zap.Error(err))
		return "", ErrDownloadURLError
	}
	return url, nil
}

func (s *trainerService) RequestCertificationUploadURL(ctx context.Context, id primitive.ObjectID, certName, contentType string) (*UploadURLResponse, error) {
	if err := s.requireStorage(); err != nil {
		return nil, err
	}
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	if findCertification(trainer, certName) < 0 {
		return nil, ErrCertificationNotFound
	}
	key, err := storage.CertificationDocumentKey(id.Hex(), contentType)
	if err != nil {
		return nil, err
	}
	return s.presignUpload(ctx, key, contentType)
}

func (s *trainerService) ConfirmCertificationDocument(ctx context.Context, id primitive.ObjectID, certName, objectKey string) (*domain.Trainer, error) {
	if err := s.verifyUpload(ctx, id, objectKey); err != nil {
		return nil, err
	}
	trainer, err := s.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	idx := findCertification(trainer, certName)
	if idx < 0 {
		return nil, ErrCertificationNotFound
	}
	trainer.Certifications[idx].DocumentKey = objectKey
	return s.save(ctx, trainer)
}
