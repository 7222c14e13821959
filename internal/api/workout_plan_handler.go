package api

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type WorkoutPlanHandler struct {
	planService service.WorkoutPlanService
	logger      *zap.Logger
}

func NewWorkoutPlanHandler(planService service.WorkoutPlanService, logger *zap.Logger) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{planService: planService, logger: logger}
}

// --- DTOs for Workout Plans ---

type PlanExerciseRequest struct {
	ExerciseID  string   `json:"exerciseId" binding:"required"`
	Sets        int      `json:"sets" binding:"gte=0"`
	Reps        int      `json:"reps" binding:"gte=0"`
	Weight      *float64 `json:"weight"`
	Duration    *int     `json:"duration"`
	RestSeconds int      `json:"restSeconds" binding:"gte=0"`
	Notes       string   `json:"notes"`
}

func (r PlanExerciseRequest) planExercise() (domain.PlanExercise, error) {
	id, err := primitive.ObjectIDFromHex(r.ExerciseID)
	if err != nil {
		return domain.PlanExercise{}, fmt.Errorf("invalid exerciseId %q", r.ExerciseID)
	}
	return domain.PlanExercise{
		ExerciseID:  id,
		Sets:        r.Sets,
		Reps:        r.Reps,
		Weight:      r.Weight,
		Duration:    r.Duration,
		RestSeconds: r.RestSeconds,
		Notes:       r.Notes,
	}, nil
}

func planExercises(in []PlanExerciseRequest) ([]domain.PlanExercise, error) {
	out := make([]domain.PlanExercise, 0, len(in))
	for _, r := range in {
		e, err := r.planExercise()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// CreateWorkoutPlanRequest defines the payload for a new plan.
// endDate is optional; when omitted it is derived from startDate and durationWeeks.
type CreateWorkoutPlanRequest struct {
	MemberID      string                `json:"memberId" binding:"required"`
	TrainerID     string                `json:"trainerId" binding:"required"`
	GymID         string                `json:"gymId"`
	Name          string                `json:"name" binding:"required"`
	Description   string                `json:"description" binding:"required"`
	Goal          string                `json:"goal"`
	DurationWeeks int                   `json:"durationWeeks"`
	Difficulty    string                `json:"difficulty" binding:"required"`
	Exercises     []PlanExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
	Schedule      domain.PlanSchedule   `json:"schedule"`
	StartDate     string                `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate       *string               `json:"endDate"`
}

type UpdateWorkoutPlanRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Goal        *string               `json:"goal"`
	Difficulty  *string               `json:"difficulty"`
	Exercises   []PlanExerciseRequest `json:"exercises" binding:"omitempty,dive"`
	Schedule    *domain.PlanSchedule  `json:"schedule"`
}

type WorkoutPlanResponse struct {
	ID            string                `json:"id"`
	MemberID      string                `json:"memberId"`
	TrainerID     string                `json:"trainerId"`
	GymID         string                `json:"gymId"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Goal          string                `json:"goal,omitempty"`
	DurationWeeks int                   `json:"durationWeeks"`
	Difficulty    string                `json:"difficulty"`
	Exercises     []domain.PlanExercise `json:"exercises"`
	Schedule      domain.PlanSchedule   `json:"schedule"`
	StartDate     time.Time             `json:"startDate"`
	EndDate       time.Time             `json:"endDate"`
	IsActive      bool                  `json:"isActive"`
	IsExpired     bool                  `json:"isExpired"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// MapWorkoutPlanToResponse converts a domain.WorkoutPlan; expiry is judged at now.
func MapWorkoutPlanToResponse(p *domain.WorkoutPlan, now time.Time) WorkoutPlanResponse {
	if p == nil {
		return WorkoutPlanResponse{}
	}
	return WorkoutPlanResponse{
		ID:            p.ID.Hex(),
		MemberID:      p.MemberID.Hex(),
		TrainerID:     p.TrainerID.Hex(),
		GymID:         p.GymID.Hex(),
		Name:          p.Name,
		Description:   p.Description,
		Goal:          p.Goal,
		DurationWeeks: p.DurationWeeks,
		Difficulty:    p.Difficulty,
		Exercises:     p.Exercises,
		Schedule:      p.Schedule,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		IsActive:      p.IsActive,
		IsExpired:     p.IsExpired(now),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func MapWorkoutPlansToResponse(plans []domain.WorkoutPlan, now time.Time) []WorkoutPlanResponse {
	responses := make([]WorkoutPlanResponse, len(plans))
	for i := range plans {
		responses[i] = MapWorkoutPlanToResponse(&plans[i], now)
	}
	return responses
}

func (h *WorkoutPlanHandler) respond(c *gin.Context, status int, p *domain.WorkoutPlan) {
	c.JSON(status, MapWorkoutPlanToResponse(p, time.Now().UTC()))
}

func (h *WorkoutPlanHandler) respondList(c *gin.Context, plans []domain.WorkoutPlan) {
	c.JSON(http.StatusOK, MapWorkoutPlansToResponse(plans, time.Now().UTC()))
}

// --- Handler Methods ---

// CreateWorkoutPlan godoc
// @Summary Create a workout plan for a member
// @Description The plan is created active and must not overlap another active plan of the member.
// @Tags WorkoutPlans
// @Accept json
// @Produce json
// @Param plan body CreateWorkoutPlanRequest true "Plan details"
// @Success 201 {object} WorkoutPlanResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Member or trainer not found"
// @Failure 409 {object} gin.H "Overlapping active plan"
// @Router /workout-plans [post]
func (h *WorkoutPlanHandler) CreateWorkoutPlan(c *gin.Context) {
	var req CreateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	memberID, err := primitive.ObjectIDFromHex(req.MemberID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid memberId format")
		return
	}
	trainerID, err := primitive.ObjectIDFromHex(req.TrainerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainerId format")
		return
	}
	gymID, err := optionalObjectID(req.GymID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid gymId format")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD")
		return
	}
	var end *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		e, err := parseDate(*req.EndDate)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD")
			return
		}
		end = &e
	}
	exercises, err := planExercises(req.Exercises)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := service.CreatePlanRequest{
		MemberID:      memberID,
		TrainerID:     trainerID,
		Name:          req.Name,
		Description:   req.Description,
		Goal:          req.Goal,
		DurationWeeks: req.DurationWeeks,
		Difficulty:    req.Difficulty,
		Exercises:     exercises,
		Schedule:      req.Schedule,
		StartDate:     start,
		EndDate:       end,
	}
	if gymID != nil {
		cmd.GymID = *gymID
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), cmd)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusCreated, plan)
}

func (h *WorkoutPlanHandler) GetWorkoutPlan(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	plan, err := h.planService.GetPlan(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, plan)
}

// ListMemberPlans handles GET /members/:id/workout-plans?active=true.
func (h *WorkoutPlanHandler) ListMemberPlans(c *gin.Context) {
	memberID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var (
		plans []domain.WorkoutPlan
		err   error
	)
	if boolQuery(c, "active") {
		plans, err = h.planService.ListActivePlansForMember(c.Request.Context(), memberID)
	} else {
		plans, err = h.planService.ListPlansForMember(c.Request.Context(), memberID)
	}
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respondList(c, plans)
}

// ListTrainerPlans handles GET /trainers/:id/workout-plans.
func (h *WorkoutPlanHandler) ListTrainerPlans(c *gin.Context) {
	trainerID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	plans, err := h.planService.ListPlansForTrainer(c.Request.Context(), trainerID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respondList(c, plans)
}

func (h *WorkoutPlanHandler) UpdateWorkoutPlan(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateWorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	upd := service.UpdatePlanRequest{
		Name:        req.Name,
		Description: req.Description,
		Goal:        req.Goal,
		Difficulty:  req.Difficulty,
		Schedule:    req.Schedule,
	}
	if req.Exercises != nil {
		exercises, err := planExercises(req.Exercises)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		upd.Exercises = exercises
	}
	plan, err := h.planService.UpdatePlan(c.Request.Context(), id, upd)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, plan)
}

// ActivateWorkoutPlan godoc
// @Summary Activate a plan
// @Tags WorkoutPlans
// @Produce json
// @Success 200 {object} WorkoutPlanResponse
// @Failure 409 {object} gin.H "Overlaps another active plan, or the plan has ended"
// @Router /workout-plans/{id}/activate [post]
func (h *WorkoutPlanHandler) ActivateWorkoutPlan(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	plan, err := h.planService.ActivatePlan(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) DeactivateWorkoutPlan(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	plan, err := h.planService.DeactivatePlan(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) AddExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req PlanExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	ex, err := req.planExercise()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	plan, err := h.planService.AddExercise(c.Request.Context(), id, ex)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) RemoveExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	exerciseID, ok := objectIDParam(c, "exerciseId")
	if !ok {
		return
	}
	plan, err := h.planService.RemoveExercise(c.Request.Context(), id, exerciseID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) DeleteWorkoutPlan(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.planService.DeletePlan(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
