package api

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type WorkoutSessionHandler struct {
	sessionService service.WorkoutSessionService
	logger         *zap.Logger
}

func NewWorkoutSessionHandler(sessionService service.WorkoutSessionService, logger *zap.Logger) *WorkoutSessionHandler {
	return &WorkoutSessionHandler{sessionService: sessionService, logger: logger}
}

// --- DTOs for Workout Sessions ---

type StartSessionRequest struct {
	MemberID      string     `json:"memberId" binding:"required"`
	WorkoutPlanID string     `json:"workoutPlanId" binding:"required"`
	SessionDate   *time.Time `json:"sessionDate"`
	StartTime     *time.Time `json:"startTime"`
}

type CompletedExerciseRequest struct {
	ExerciseID    string   `json:"exerciseId" binding:"required"`
	SetsCompleted int      `json:"setsCompleted" binding:"gte=0"`
	RepsCompleted int      `json:"repsCompleted" binding:"gte=0"`
	Weight        *float64 `json:"weight"`
	Duration      *int     `json:"duration"`
	RestSeconds   int      `json:"restSeconds" binding:"gte=0"`
	Notes         string   `json:"notes"`
	Rating        *int     `json:"rating" binding:"omitempty,min=1,max=5"`
}

type CompleteSessionRequest struct {
	EndTime        *time.Time                 `json:"endTime"`
	Exercises      []CompletedExerciseRequest `json:"exercises" binding:"omitempty,dive"`
	Rating         *int                       `json:"rating" binding:"omitempty,min=1,max=5"`
	Notes          string                     `json:"notes"`
	CaloriesBurned *int                       `json:"caloriesBurned" binding:"omitempty,gte=0"`
}

type ExerciseProgressRequest struct {
	ExerciseID  string   `json:"exerciseId" binding:"required"`
	Reps        int      `json:"reps" binding:"gte=0"`
	Weight      *float64 `json:"weight"`
	Duration    *int     `json:"duration"`
	RestSeconds int      `json:"restSeconds" binding:"gte=0"`
	Notes       string   `json:"notes"`
	Completed   bool     `json:"completed"`
}

type WorkoutSessionResponse struct {
	ID                   string                   `json:"id"`
	MemberID             string                   `json:"memberId"`
	WorkoutPlanID        string                   `json:"workoutPlanId"`
	GymID                string                   `json:"gymId"`
	SessionDate          time.Time                `json:"sessionDate"`
	StartTime            *time.Time               `json:"startTime,omitempty"`
	EndTime              *time.Time               `json:"endTime,omitempty"`
	State                string                   `json:"state"`
	Exercises            []domain.SessionExercise `json:"exercises"`
	DurationMinutes      float64                  `json:"durationMinutes"`
	CompletionPercentage float64                  `json:"completionPercentage"`
	TotalSetsCompleted   int                      `json:"totalSetsCompleted"`
	OverallRating        *int                     `json:"overallRating,omitempty"`
	Notes                string                   `json:"notes,omitempty"`
	CaloriesBurned       *int                     `json:"caloriesBurned,omitempty"`
	CreatedAt            time.Time                `json:"createdAt"`
	UpdatedAt            time.Time                `json:"updatedAt"`
}

func MapWorkoutSessionToResponse(s *domain.WorkoutSession) WorkoutSessionResponse {
	if s == nil {
		return WorkoutSessionResponse{}
	}
	return WorkoutSessionResponse{
		ID:                   s.ID.Hex(),
		MemberID:             s.MemberID.Hex(),
		WorkoutPlanID:        s.WorkoutPlanID.Hex(),
		GymID:                s.GymID.Hex(),
		SessionDate:          s.SessionDate,
		StartTime:            s.StartTime,
		EndTime:              s.EndTime,
		State:                string(s.State),
		Exercises:            s.Exercises,
		DurationMinutes:      s.Duration().Minutes(),
		CompletionPercentage: s.CompletionPercentage(),
		TotalSetsCompleted:   s.TotalSetsCompleted(),
		OverallRating:        s.OverallRating,
		Notes:                s.Notes,
		CaloriesBurned:       s.CaloriesBurned,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func MapWorkoutSessionsToResponse(sessions []domain.WorkoutSession) []WorkoutSessionResponse {
	responses := make([]WorkoutSessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = MapWorkoutSessionToResponse(&sessions[i])
	}
	return responses
}

// StatisticsResponse reports durations in minutes.
type StatisticsResponse struct {
	TotalSessions          int     `json:"totalSessions"`
	CompletedSessions      int     `json:"completedSessions"`
	CancelledSessions      int     `json:"cancelledSessions"`
	TotalDurationMinutes   float64 `json:"totalDurationMinutes"`
	AverageDurationMinutes float64 `json:"averageDurationMinutes"`
	TotalCaloriesBurned    int     `json:"totalCaloriesBurned"`
	AverageRating          float64 `json:"averageRating"`
	TotalSetsCompleted     int     `json:"totalSetsCompleted"`
	AverageCompletionRate  float64 `json:"averageCompletionRate"`
}

func MapStatisticsToResponse(st *domain.SessionStatistics) StatisticsResponse {
	return StatisticsResponse{
		TotalSessions:          st.TotalSessions,
		CompletedSessions:      st.CompletedSessions,
		CancelledSessions:      st.CancelledSessions,
		TotalDurationMinutes:   st.TotalDuration.Minutes(),
		AverageDurationMinutes: st.AverageDuration.Minutes(),
		TotalCaloriesBurned:    st.TotalCaloriesBurned,
		AverageRating:          st.AverageRating,
		TotalSetsCompleted:     st.TotalSetsCompleted,
		AverageCompletionRate:  st.AverageCompletionRate,
	}
}

// --- Handler Methods ---

// StartSession godoc
// @Summary Start a workout session
// @Description A member can have at most one session in progress or paused.
// @Tags WorkoutSessions
// @Accept json
// @Produce json
// @Param session body StartSessionRequest true "Member and plan"
// @Success 201 {object} WorkoutSessionResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Plan not found"
// @Failure 409 {object} gin.H "Member already has an active session"
// @Router /workout-sessions [post]
func (h *WorkoutSessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	memberID, err := primitive.ObjectIDFromHex(req.MemberID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid memberId format")
		return
	}
	planID, err := primitive.ObjectIDFromHex(req.WorkoutPlanID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workoutPlanId format")
		return
	}
	cmd := service.StartSessionRequest{MemberID: memberID, PlanID: planID}
	if req.SessionDate != nil {
		cmd.SessionDate = *req.SessionDate
	}
	if req.StartTime != nil {
		cmd.StartTime = *req.StartTime
	}

	session, err := h.sessionService.StartSession(c.Request.Context(), cmd)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutSessionToResponse(session))
}

func (h *WorkoutSessionHandler) GetSession(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	session, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionToResponse(session))
}

// transition runs a state change that needs no body.
func (h *WorkoutSessionHandler) transition(c *gin.Context, apply func(*gin.Context, primitive.ObjectID) (*domain.WorkoutSession, error)) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	session, err := apply(c, id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionToResponse(session))
}

func (h *WorkoutSessionHandler) PauseSession(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
		return h.sessionService.PauseSession(c.Request.Context(), id)
	})
}

func (h *WorkoutSessionHandler) ResumeSession(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
		return h.sessionService.ResumeSession(c.Request.Context(), id)
	})
}

func (h *WorkoutSessionHandler) CancelSession(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id primitive.ObjectID) (*domain.WorkoutSession, error) {
		return h.sessionService.CancelSession(c.Request.Context(), id)
	})
}

// CompleteSession godoc
// @Summary Complete an in-progress session
// @Tags WorkoutSessions
// @Accept json
// @Produce json
// @Param body body CompleteSessionRequest false "Results"
// @Success 200 {object} WorkoutSessionResponse
// @Failure 409 {object} gin.H "Session is not in progress"
// @Router /workout-sessions/{id}/complete [post]
func (h *WorkoutSessionHandler) CompleteSession(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req CompleteSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
	}
	cmd := service.CompleteSessionRequest{
		Rating:         req.Rating,
		Notes:          req.Notes,
		CaloriesBurned: req.CaloriesBurned,
	}
	if req.EndTime != nil {
		cmd.EndTime = *req.EndTime
	}
	for _, e := range req.Exercises {
		exID, err := primitive.ObjectIDFromHex(e.ExerciseID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exerciseId format")
			return
		}
		cmd.Exercises = append(cmd.Exercises, service.CompletedExercise{
			ExerciseID:    exID,
			SetsCompleted: e.SetsCompleted,
			RepsCompleted: e.RepsCompleted,
			Weight:        e.Weight,
			Duration:      e.Duration,
			RestSeconds:   e.RestSeconds,
			Notes:         e.Notes,
			Rating:        e.Rating,
		})
	}

	session, err := h.sessionService.CompleteSession(c.Request.Context(), id, cmd)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionToResponse(session))
}

func (h *WorkoutSessionHandler) RecordProgress(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req ExerciseProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	exID, err := primitive.ObjectIDFromHex(req.ExerciseID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exerciseId format")
		return
	}
	session, err := h.sessionService.RecordExerciseProgress(c.Request.Context(), id, service.ExerciseProgress{
		ExerciseID:  exID,
		Reps:        req.Reps,
		Weight:      req.Weight,
		Duration:    req.Duration,
		RestSeconds: req.RestSeconds,
		Notes:       req.Notes,
		Completed:   req.Completed,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionToResponse(session))
}

func (h *WorkoutSessionHandler) DeleteSession(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.sessionService.DeleteSession(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMemberSessions handles GET /members/:id/workout-sessions with an
// optional from/to date range.
func (h *WorkoutSessionHandler) ListMemberSessions(c *gin.Context) {
	memberID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var (
		sessions []domain.WorkoutSession
		err      error
	)
	from, to := c.Query("from"), c.Query("to")
	if from != "" || to != "" {
		start, errFrom := parseDate(from)
		end, errTo := parseDate(to)
		if errFrom != nil || errTo != nil {
			abortWithError(c, http.StatusBadRequest, "from and to must both be dates (YYYY-MM-DD)")
			return
		}
		sessions, err = h.sessionService.ListSessionsInRange(c.Request.Context(), memberID, start, end)
	} else {
		sessions, err = h.sessionService.ListSessionsForMember(c.Request.Context(), memberID)
	}
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionsToResponse(sessions))
}

// ListPlanSessions handles GET /workout-plans/:id/sessions.
func (h *WorkoutSessionHandler) ListPlanSessions(c *gin.Context) {
	planID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	sessions, err := h.sessionService.ListSessionsForPlan(c.Request.Context(), planID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionsToResponse(sessions))
}

// GetActiveSession returns 404 when the member has no session in progress or paused.
func (h *WorkoutSessionHandler) GetActiveSession(c *gin.Context) {
	memberID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	session, err := h.sessionService.GetActiveSession(c.Request.Context(), memberID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	if session == nil {
		abortWithError(c, http.StatusNotFound, "Member has no active workout session")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutSessionToResponse(session))
}

func (h *WorkoutSessionHandler) GetStatistics(c *gin.Context) {
	memberID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	stats, err := h.sessionService.GetStatistics(c.Request.Context(), memberID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapStatisticsToResponse(stats))
}
