package service

import (
	"context"
	"errors"
	"testing"

	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/repository"
	"alcyxob/gymflow/internal/repository/mocks"
	"alcyxob/gymflow/internal/schedule"

	"github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func weekdayHours() domain.OperatingHours {
	open := domain.DaySchedule{Open: "06:00", Close: "22:00"}
	return domain.OperatingHours{
		Monday: open, Tuesday: open, Wednesday: open, Thursday: open, Friday: open,
		Saturday: domain.DaySchedule{Open: "08:00", Close: "18:00"},
		Sunday:   domain.DaySchedule{IsClosed: true},
	}
}

func validGymInput() GymInput {
	return GymInput{
		Name:           "Downtown",
		Email:          "Front@Downtown.Test",
		Phone:          "555-0100",
		Address:        domain.Address{City: "Springfield"},
		OperatingHours: weekdayHours(),
		Facilities:     []string{"pool"},
		MaxCapacity:    100,
	}
}

func TestCreateGym(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGymRepository(ctrl)
	svc := NewGymService(repo, zap.NewNop())
	id := primitive.NewObjectID()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)

	gym, err := svc.CreateGym(context.Background(), validGymInput())
	if err != nil {
		t.Fatalf("CreateGym: %v", err)
	}
	if gym.ID != id || gym.Email != "front@downtown.test" || !gym.IsActive {
		t.Fatalf("unexpected gym: %+v", gym)
	}
}

func TestCreateGymDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGymRepository(ctrl)
	svc := NewGymService(repo, zap.NewNop())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(primitive.NilObjectID, repository.ErrDuplicate)

	if _, err := svc.CreateGym(context.Background(), validGymInput()); !errors.Is(err, ErrGymEmailTaken) {
		t.Fatalf("expected ErrGymEmailTaken, got %v", err)
	}
}

func TestCreateGymValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GymInput)
		wantErr error
	}{
		{"blank name", func(in *GymInput) { in.Name = "" }, ErrValidationFailed},
		{"zero capacity", func(in *GymInput) { in.MaxCapacity = 0 }, ErrValidationFailed},
		{"no facilities", func(in *GymInput) { in.Facilities = nil }, ErrValidationFailed},
		{"close before open", func(in *GymInput) {
			in.OperatingHours.Monday = domain.DaySchedule{Open: "22:00", Close: "06:00"}
		}, schedule.ErrInvalidArgument},
		{"open day without hours", func(in *GymInput) {
			in.OperatingHours.Sunday = domain.DaySchedule{}
		}, schedule.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGymService(mocks.NewMockGymRepository(gomock.NewController(t)), zap.NewNop())
			in := validGymInput()
			tt.mutate(&in)
			if _, err := svc.CreateGym(context.Background(), in); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIsGymOpen(t *testing.T) {
	gym := &domain.Gym{ID: primitive.NewObjectID(), OperatingHours: weekdayHours(), MaxCapacity: 10}

	tests := []struct {
		day, clock string
		want       bool
	}{
		{"monday", "06:00", true},
		{"monday", "22:00", true},
		{"monday", "22:01", false},
		{"saturday", "07:59", false},
		{"Saturday", "12:00", true},
		{"sunday", "12:00", false},
	}
	for _, tt := range tests {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockGymRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), gym.ID).Return(gym, nil)
		svc := NewGymService(repo, zap.NewNop())

		got, err := svc.IsGymOpen(context.Background(), gym.ID, tt.day, tt.clock)
		if err != nil {
			t.Fatalf("%s %s: %v", tt.day, tt.clock, err)
		}
		if got != tt.want {
			t.Errorf("IsGymOpen(%s, %s) = %v, want %v", tt.day, tt.clock, got, tt.want)
		}
	}
}

func TestIsGymOpenRejectsMalformedInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGymRepository(ctrl)
	gym := &domain.Gym{ID: primitive.NewObjectID(), OperatingHours: weekdayHours()}
	repo.EXPECT().GetByID(gomock.Any(), gym.ID).Return(gym, nil).Times(2)
	svc := NewGymService(repo, zap.NewNop())

	if _, err := svc.IsGymOpen(context.Background(), gym.ID, "funday", "10:00"); !errors.Is(err, schedule.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for unknown day, got %v", err)
	}
	if _, err := svc.IsGymOpen(context.Background(), gym.ID, "monday", "25:00"); !errors.Is(err, schedule.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for bad clock, got %v", err)
	}
}

func TestIsGymOpenMalformedStoredHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGymRepository(ctrl)
	gym := &domain.Gym{ID: primitive.NewObjectID(), OperatingHours: weekdayHours()}
	gym.OperatingHours.Monday.Open = "late"
	repo.EXPECT().GetByID(gomock.Any(), gym.ID).Return(gym, nil)
	svc := NewGymService(repo, zap.NewNop())

	_, err := svc.IsGymOpen(context.Background(), gym.ID, "tuesday", "10:00")
	if err == nil || errors.Is(err, schedule.ErrInvalidArgument) {
		t.Fatalf("broken stored hours should be an internal error, got %v", err)
	}
}

func TestCheckCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGymRepository(ctrl)
	gym := &domain.Gym{ID: primitive.NewObjectID(), MaxCapacity: 2}
	repo.EXPECT().GetByID(gomock.Any(), gym.ID).Return(gym, nil).Times(2)
	missing := primitive.NewObjectID()
	repo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, repository.ErrNotFound)
	svc := NewGymService(repo, zap.NewNop())

	if ok, err := svc.CheckCapacity(context.Background(), gym.ID, 1); err != nil || !ok {
		t.Errorf("1 of 2 should fit, got %v, %v", ok, err)
	}
	if ok, err := svc.CheckCapacity(context.Background(), gym.ID, 2); err != nil || ok {
		t.Errorf("2 of 2 should be full, got %v, %v", ok, err)
	}
	if _, err := svc.CheckCapacity(context.Background(), gym.ID, -1); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
	if _, err := svc.CheckCapacity(context.Background(), missing, 0); !errors.Is(err, ErrGymNotFound) {
		t.Errorf("expected ErrGymNotFound, got %v", err)
	}
}
