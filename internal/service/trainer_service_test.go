package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/repository"
	"alcyxob/gymflow/internal/repository/mocks"
	"alcyxob/gymflow/internal/schedule"
	"alcyxob/gymflow/internal/storage"
	stmocks "alcyxob/gymflow/internal/storage/mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type trainerFixture struct {
	svc      TrainerService
	trainers *mocks.MockTrainerRepository
	gyms     *mocks.MockGymRepository
	files    *stmocks.MockFileStorage
}

func newTrainerFixture(t *testing.T, withStorage bool) *trainerFixture {
	ctrl := gomock.NewController(t)
	f := &trainerFixture{
		trainers: mocks.NewMockTrainerRepository(ctrl),
		gyms:     mocks.NewMockGymRepository(ctrl),
		files:    stmocks.NewMockFileStorage(ctrl),
	}
	var fs storage.FileStorage
	if withStorage {
		fs = f.files
	}
	f.svc = NewTrainerService(f.trainers, f.gyms, fs, zap.NewNop())
	return f
}

func morningTrainer() *domain.Trainer {
	return &domain.Trainer{
		ID:         primitive.NewObjectID(),
		GymID:      primitive.NewObjectID(),
		Name:       "Ana",
		Email:      "ana@gym.test",
		HourlyRate: decimal.NewFromInt(40),
		Availability: domain.Availability{
			Monday: []domain.AvailabilitySlot{{Start: "09:00", End: "12:00"}},
		},
		IsActive: true,
	}
}

func validTrainerInput() TrainerInput {
	return TrainerInput{
		GymID:       primitive.NewObjectID(),
		Name:        " Ana ",
		Email:       "Ana@Gym.Test",
		Specialties: []string{"yoga"},
		HourlyRate:  decimal.RequireFromString("45.50"),
		Availability: domain.Availability{
			Monday: []domain.AvailabilitySlot{{Start: "09:00", End: "12:00"}},
		},
	}
}

func TestCreateTrainer(t *testing.T) {
	f := newTrainerFixture(t, false)
	in := validTrainerInput()
	id := primitive.NewObjectID()

	f.gyms.EXPECT().GetByID(gomock.Any(), in.GymID).Return(&domain.Gym{ID: in.GymID}, nil)
	f.trainers.EXPECT().GetByEmail(gomock.Any(), "ana@gym.test").Return(nil, repository.ErrNotFound)
	f.trainers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)

	trainer, err := f.svc.CreateTrainer(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateTrainer: %v", err)
	}
	if trainer.ID != id || trainer.Name != "Ana" || trainer.Email != "ana@gym.test" || !trainer.IsActive {
		t.Fatalf("unexpected trainer: %+v", trainer)
	}
	if trainer.Certifications == nil {
		t.Errorf("certifications should be an empty list, not nil")
	}
}

func TestCreateTrainerEmailTaken(t *testing.T) {
	f := newTrainerFixture(t, false)
	in := validTrainerInput()

	f.gyms.EXPECT().GetByID(gomock.Any(), in.GymID).Return(&domain.Gym{ID: in.GymID}, nil)
	f.trainers.EXPECT().GetByEmail(gomock.Any(), "ana@gym.test").Return(&domain.Trainer{}, nil)

	if _, err := f.svc.CreateTrainer(context.Background(), in); !errors.Is(err, ErrTrainerEmailTaken) {
		t.Fatalf("expected ErrTrainerEmailTaken, got %v", err)
	}
}

func TestCreateTrainerValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TrainerInput)
		wantErr error
	}{
		{"missing gym", func(in *TrainerInput) { in.GymID = primitive.NilObjectID }, ErrInvalidID},
		{"blank name", func(in *TrainerInput) { in.Name = "  " }, ErrValidationFailed},
		{"zero rate", func(in *TrainerInput) { in.HourlyRate = decimal.Zero }, ErrValidationFailed},
		{"no specialty", func(in *TrainerInput) { in.Specialties = nil }, ErrValidationFailed},
		{"negative experience", func(in *TrainerInput) { in.ExperienceYears = -1 }, ErrValidationFailed},
		{"inverted slot", func(in *TrainerInput) {
			in.Availability.Monday = []domain.AvailabilitySlot{{Start: "12:00", End: "09:00"}}
		}, schedule.ErrInvalidArgument},
		{"bad clock", func(in *TrainerInput) {
			in.Availability.Friday = []domain.AvailabilitySlot{{Start: "9am", End: "10:00"}}
		}, schedule.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTrainerFixture(t, false)
			in := validTrainerInput()
			tt.mutate(&in)
			if _, err := f.svc.CreateTrainer(context.Background(), in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCheckSlot(t *testing.T) {
	tests := []struct {
		name       string
		day        string
		start, end string
		accepted   bool
	}{
		{"inside", "monday", "10:00", "11:00", true},
		{"whole slot", "Monday", "09:00", "12:00", true},
		{"partial overlap", "monday", "11:00", "13:00", false},
		{"day off", "tuesday", "10:00", "11:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTrainerFixture(t, false)
			trainer := morningTrainer()
			f.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil)

			d, err := f.svc.CheckSlot(context.Background(), trainer.ID, tt.day, tt.start, tt.end)
			if err != nil {
				t.Fatalf("CheckSlot: %v", err)
			}
			if d.Accepted != tt.accepted {
				t.Fatalf("Accepted = %v, want %v", d.Accepted, tt.accepted)
			}
			if !tt.accepted && d.Reason != schedule.ReasonOutsideAvailability {
				t.Errorf("Reason = %q", d.Reason)
			}
		})
	}
}

func TestCheckSlotRejectsMalformedRequest(t *testing.T) {
	f := newTrainerFixture(t, false)
	trainer := morningTrainer()
	f.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil).Times(2)

	if _, err := f.svc.CheckSlot(context.Background(), trainer.ID, "someday", "10:00", "11:00"); !errors.Is(err, schedule.ErrInvalidArgument) {
		t.Errorf("unknown day: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := f.svc.CheckSlot(context.Background(), trainer.ID, "monday", "11:00", "10:00"); !errors.Is(err, schedule.ErrInvalidArgument) {
		t.Errorf("inverted range: expected ErrInvalidArgument, got %v", err)
	}
}

func TestFindAvailableTrainers(t *testing.T) {
	f := newTrainerFixture(t, false)
	gymID := primitive.NewObjectID()
	morning := morningTrainer()
	evening := morningTrainer()
	evening.Availability.Monday = []domain.AvailabilitySlot{{Start: "17:00", End: "21:00"}}
	broken := morningTrainer()
	broken.Availability.Monday = []domain.AvailabilitySlot{{Start: "25:00", End: "26:00"}}

	f.trainers.EXPECT().ListActiveByGym(gomock.Any(), gymID).Return([]domain.Trainer{*morning, *evening, *broken}, nil)

	got, err := f.svc.FindAvailableTrainers(context.Background(), gymID, "monday", "09:30", "10:30")
	if err != nil {
		t.Fatalf("FindAvailableTrainers: %v", err)
	}
	if len(got) != 1 || got[0].ID != morning.ID {
		t.Fatalf("expected only the morning trainer, got %+v", got)
	}
}

func TestUpdateDayAvailability(t *testing.T) {
	f := newTrainerFixture(t, false)
	trainer := morningTrainer()
	f.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil).Times(2)
	f.trainers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	got, err := f.svc.UpdateDayAvailability(context.Background(), trainer.ID, "wednesday", true, "14:00", "18:00")
	if err != nil {
		t.Fatalf("UpdateDayAvailability: %v", err)
	}
	if slots := got.Availability.Wednesday; len(slots) != 1 || slots[0].Start != "14:00" || slots[0].End != "18:00" {
		t.Fatalf("wednesday = %+v", slots)
	}

	got, err = f.svc.UpdateDayAvailability(context.Background(), trainer.ID, "monday", false, "", "")
	if err != nil {
		t.Fatalf("UpdateDayAvailability: %v", err)
	}
	if got.Availability.Monday == nil || len(got.Availability.Monday) != 0 {
		t.Fatalf("monday should be cleared, got %+v", got.Availability.Monday)
	}
}

func TestAddCertificationReplacesSameName(t *testing.T) {
	f := newTrainerFixture(t, false)
	trainer := morningTrainer()
	trainer.Certifications = []domain.Certification{
		{Name: "CPR", Institution: "Red Cross", DateObtained: day(2020, 1, 1)},
		{Name: "Yoga 200", Institution: "Yoga Alliance", DateObtained: day(2021, 1, 1)},
	}
	f.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil)
	f.trainers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.svc.AddCertification(context.Background(), trainer.ID, domain.Certification{
		Name: "cpr", Institution: "Red Cross", DateObtained: day(2024, 1, 1),
	})
	if err != nil {
		t.Fatalf("AddCertification: %v", err)
	}
	if len(got.Certifications) != 2 || !got.Certifications[1].DateObtained.Equal(day(2024, 1, 1)) {
		t.Fatalf("unexpected certifications: %+v", got.Certifications)
	}
}

func TestMediaRequiresStorage(t *testing.T) {
	f := newTrainerFixture(t, false)
	id := primitive.NewObjectID()
	if _, err := f.svc.RequestProfileImageUploadURL(context.Background(), id, "image/png"); !errors.Is(err, storage.ErrStorageDisabled) {
		t.Fatalf("expected ErrStorageDisabled, got %v", err)
	}
	if _, err := f.svc.GetProfileImageURL(context.Background(), id); !errors.Is(err, storage.ErrStorageDisabled) {
		t.Fatalf("expected ErrStorageDisabled, got %v", err)
	}
}

func TestRequestProfileImageUploadURL(t *testing.T) {
	f := newTrainerFixture(t, true)
	trainer := morningTrainer()
	f.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil)
	f.files.EXPECT().
		GeneratePresignedUploadURL(gomock.Any(), gomock.Any(), "image/png", gomock.Any()).
		Return("https://s3.test/upload", nil)

	resp, err := f.svc.RequestProfileImageUploadURL(context.Background(), trainer.ID, "image/png")
	if err != nil {
		t.Fatalf("RequestProfileImageUploadURL: %v", err)
	}
	prefix := "trainers/" + trainer.ID.Hex() + "/profile/"
	if resp.UploadURL != "https://s3.test/upload" || !strings.HasPrefix(resp.ObjectKey, prefix) || !strings.HasSuffix(resp.ObjectKey, ".png") {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRequestProfileImageUploadURLRejectsContentType(t *testing.T) {
	f := newTrainerFixture(t, true)
	trainer := morningTrainer()
	f.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil)

	if _, err := f.svc.RequestProfileImageUploadURL(context.Background(), trainer.ID, "application/zip"); !errors.Is(err, storage.ErrUnsupportedContentType) {
		t.Fatalf("expected ErrUnsupportedContentType, got %v", err)
	}
}

func TestConfirmProfileImage(t *testing.T) {
	f := newTrainerFixture(t, true)
	trainer := morningTrainer()
	trainer.ProfileImageKey = "trainers/" + trainer.ID.Hex() + "/profile/old.png"
	newKey := "trainers/" + trainer.ID.Hex() + "/profile/new.png"

	f.files.EXPECT().ObjectExists(gomock.Any(), newKey).Return(true, nil)
	f.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil)
	f.trainers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	f.files.EXPECT().DeleteObject(gomock.Any(), trainer.ProfileImageKey).Return(errors.New("s3 down"))

	got, err := f.svc.ConfirmProfileImage(context.Background(), trainer.ID, newKey)
	if err != nil {
		t.Fatalf("ConfirmProfileImage: %v", err)
	}
	if got.ProfileImageKey != newKey {
		t.Fatalf("ProfileImageKey = %q", got.ProfileImageKey)
	}
}

func TestConfirmProfileImageChecksKey(t *testing.T) {
	f := newTrainerFixture(t, true)
	id := primitive.NewObjectID()
	other := "trainers/" + primitive.NewObjectID().Hex() + "/profile/x.png"

	if _, err := f.svc.ConfirmProfileImage(context.Background(), id, other); !errors.Is(err, ErrObjectKeyMismatch) {
		t.Fatalf("expected ErrObjectKeyMismatch, got %v", err)
	}

	mine := "trainers/" + id.Hex() + "/profile/x.png"
	f.files.EXPECT().ObjectExists(gomock.Any(), mine).Return(false, nil)
	if _, err := f.svc.ConfirmProfileImage(context.Background(), id, mine); !errors.Is(err, ErrUploadNotFound) {
		t.Fatalf("expected ErrUploadNotFound, got %v", err)
	}
}

func TestGetProfileImageURLWithoutImage(t *testing.T) {
	f := newTrainerFixture(t, true)
	trainer := morningTrainer()
	f.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil)

	url, err := f.svc.GetProfileImageURL(context.Background(), trainer.ID)
	if err != nil || url != "" {
		t.Fatalf("expected empty url, got %q, %v", url, err)
	}
}
