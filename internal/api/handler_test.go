package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"alcyxob/gymflow/internal/domain"
	evmocks "alcyxob/gymflow/internal/events/mocks"
	"alcyxob/gymflow/internal/repository"
	"alcyxob/gymflow/internal/repository/mocks"
	"alcyxob/gymflow/internal/schedule"
	"alcyxob/gymflow/internal/service"
	"alcyxob/gymflow/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type testServer struct {
	router    *gin.Engine
	gyms      *mocks.MockGymRepository
	trainers  *mocks.MockTrainerRepository
	members   *mocks.MockMemberRepository
	exercises *mocks.MockExerciseRepository
	plans     *mocks.MockWorkoutPlanRepository
	sessions  *mocks.MockWorkoutSessionRepository
	pub       *evmocks.MockPublisher
}

// newTestServer wires the real services over mocked repositories. Trainer
// media storage is left unconfigured.
func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	s := &testServer{
		gyms:      mocks.NewMockGymRepository(ctrl),
		trainers:  mocks.NewMockTrainerRepository(ctrl),
		members:   mocks.NewMockMemberRepository(ctrl),
		exercises: mocks.NewMockExerciseRepository(ctrl),
		plans:     mocks.NewMockWorkoutPlanRepository(ctrl),
		sessions:  mocks.NewMockWorkoutSessionRepository(ctrl),
		pub:       evmocks.NewMockPublisher(ctrl),
	}
	logger := zap.NewNop()
	s.router = gin.New()
	s.router.Use(Recovery(logger), RequestLogger(logger))
	SetupRoutes(s.router, logger, Services{
		Gyms:            service.NewGymService(s.gyms, logger),
		Trainers:        service.NewTrainerService(s.trainers, s.gyms, nil, logger),
		MemberCommands:  service.NewMemberCommands(s.members, s.pub, logger),
		MemberQueries:   service.NewMemberQueries(s.members),
		Exercises:       service.NewExerciseService(s.exercises, s.trainers, logger),
		WorkoutPlans:    service.NewWorkoutPlanService(s.plans, s.members, s.trainers, s.exercises, s.pub, logger),
		WorkoutSessions: service.NewWorkoutSessionService(s.sessions, s.plans, s.pub, logger),
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrValidationFailed, http.StatusBadRequest},
		{fmt.Errorf("%w: member ID", service.ErrInvalidID), http.StatusBadRequest},
		{schedule.ErrInvalidDuration, http.StatusBadRequest},
		{storage.ErrUnsupportedContentType, http.StatusBadRequest},
		{service.ErrGymNotFound, http.StatusNotFound},
		{service.ErrWorkoutSessionNotFound, http.StatusNotFound},
		{schedule.Reject(schedule.ReasonOverlappingPlan, "abc").Err(), http.StatusConflict},
		{schedule.ErrInvalidTransition, http.StatusConflict},
		{service.ErrMemberEmailTaken, http.StatusConflict},
		{service.ErrExerciseAccessDenied, http.StatusForbidden},
		{storage.ErrStorageDisabled, http.StatusServiceUnavailable},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/ping", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decode[map[string]string](t, w); got["message"] != "pong" {
		t.Fatalf("body = %v", got)
	}
}

func TestCreateGymEndpoint(t *testing.T) {
	s := newTestServer(t)
	id := primitive.NewObjectID()
	s.gyms.EXPECT().Create(gomock.Any(), gomock.Any()).Return(id, nil)

	open := domain.DaySchedule{Open: "06:00", Close: "22:00"}
	w := s.do(t, http.MethodPost, "/api/v1/gyms", GymRequest{
		Name:  "Downtown",
		Phone: "555-0100",
		Email: "front@downtown.test",
		OperatingHours: domain.OperatingHours{
			Monday: open, Tuesday: open, Wednesday: open, Thursday: open, Friday: open,
			Saturday: open, Sunday: domain.DaySchedule{IsClosed: true},
		},
		Facilities:  []string{"pool"},
		MaxCapacity: 80,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := decode[GymResponse](t, w); got.ID != id.Hex() || !got.IsActive {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestCreateGymEndpointRejectsMissingFields(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/v1/gyms", map[string]any{"name": "No email"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestInvalidObjectIDIsBadRequest(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/api/v1/gyms/not-an-id", "/api/v1/workout-sessions/123", "/api/v1/members/xyz/statistics"} {
		if w := s.do(t, http.MethodGet, path, nil); w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400", path, w.Code)
		}
	}
}

func TestGetGymNotFound(t *testing.T) {
	s := newTestServer(t)
	id := primitive.NewObjectID()
	s.gyms.EXPECT().GetByID(gomock.Any(), id).Return(nil, repository.ErrNotFound)

	w := s.do(t, http.MethodGet, "/api/v1/gyms/"+id.Hex(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCheckSlotEndpoint(t *testing.T) {
	s := newTestServer(t)
	trainer := &domain.Trainer{
		ID:   primitive.NewObjectID(),
		Name: "Ana",
		Availability: domain.Availability{
			Monday: []domain.AvailabilitySlot{{Start: "09:00", End: "12:00"}},
		},
		IsActive: true,
	}
	s.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil).Times(2)

	base := "/api/v1/trainers/" + trainer.ID.Hex() + "/availability/check"

	w := s.do(t, http.MethodGet, base+"?day=monday&start=09:00&end=12:00", nil)
	if got := decode[SlotCheckResponse](t, w); w.Code != http.StatusOK || !got.Accepted {
		t.Fatalf("inside slot: status %d, body %+v", w.Code, got)
	}

	w = s.do(t, http.MethodGet, base+"?day=monday&start=11:00&end=13:00", nil)
	got := decode[SlotCheckResponse](t, w)
	if w.Code != http.StatusOK || got.Accepted || got.Reason != string(schedule.ReasonOutsideAvailability) {
		t.Fatalf("outside slot: status %d, body %+v", w.Code, got)
	}
}

func TestCheckSlotEndpointMalformedTime(t *testing.T) {
	s := newTestServer(t)
	trainer := &domain.Trainer{ID: primitive.NewObjectID(), IsActive: true}
	s.trainers.EXPECT().GetByID(gomock.Any(), trainer.ID).Return(trainer, nil)

	w := s.do(t, http.MethodGet, "/api/v1/trainers/"+trainer.ID.Hex()+"/availability/check?day=monday&start=9am&end=10:00", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestStartSessionConflictCarriesReason(t *testing.T) {
	s := newTestServer(t)
	memberID := primitive.NewObjectID()
	plan := &domain.WorkoutPlan{ID: primitive.NewObjectID(), MemberID: memberID, GymID: primitive.NewObjectID()}
	running := domain.WorkoutSession{ID: primitive.NewObjectID(), MemberID: memberID, State: schedule.SessionInProgress}

	s.plans.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)
	s.sessions.EXPECT().ListByMemberAndStates(gomock.Any(), memberID, gomock.Any()).Return([]domain.WorkoutSession{running}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/workout-sessions", StartSessionRequest{
		MemberID:      memberID.Hex(),
		WorkoutPlanID: plan.ID.Hex(),
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (body %s)", w.Code, w.Body.String())
	}
	body := decode[map[string]string](t, w)
	if body["reason"] != string(schedule.ReasonActiveSessionExists) || body["conflictingId"] != running.ID.Hex() {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetActiveSessionNoneIsNotFound(t *testing.T) {
	s := newTestServer(t)
	memberID := primitive.NewObjectID()
	s.sessions.EXPECT().ListByMemberAndStates(gomock.Any(), memberID, gomock.Any()).Return(nil, nil)

	w := s.do(t, http.MethodGet, "/api/v1/members/"+memberID.Hex()+"/workout-sessions/active", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestProfileImageUploadWithoutStorage(t *testing.T) {
	s := newTestServer(t)
	id := primitive.NewObjectID()

	w := s.do(t, http.MethodPost, "/api/v1/trainers/"+id.Hex()+"/profile-image/upload-url", UploadURLRequest{ContentType: "image/jpeg"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestQuotePriceEndpoint(t *testing.T) {
	s := newTestServer(t)
	member := &domain.Member{ID: primitive.NewObjectID(), Name: "Bo", MembershipType: domain.MembershipVIP, IsActive: true}
	s.members.EXPECT().GetByID(gomock.Any(), member.ID).Return(member, nil).Times(2)

	w := s.do(t, http.MethodGet, "/api/v1/members/"+member.ID.Hex()+"/quote?price=50", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	got := decode[QuoteResponse](t, w)
	if !got.Price.Equal(decimal.NewFromInt(40)) || !got.Discount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected quote: %+v", got)
	}
	if got.MembershipType != "vip" {
		t.Fatalf("MembershipType = %q", got.MembershipType)
	}
}

func TestQuotePriceRejectsBadPrice(t *testing.T) {
	s := newTestServer(t)
	id := primitive.NewObjectID()

	if w := s.do(t, http.MethodGet, "/api/v1/members/"+id.Hex()+"/quote?price=lots", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUnexpectedErrorIsHidden(t *testing.T) {
	s := newTestServer(t)
	s.members.EXPECT().List(gomock.Any()).Return(nil, errors.New("socket closed"))

	w := s.do(t, http.MethodGet, "/api/v1/members", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := decode[map[string]string](t, w); body["error"] != "Internal server error" {
		t.Fatalf("internal details leaked: %v", body)
	}
}
