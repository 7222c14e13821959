package api

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	logger          *zap.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, logger *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, logger: logger}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseRequest defines the expected JSON for creating or replacing an exercise.
type ExerciseRequest struct {
	TrainerID                  string   `json:"trainerId"` // Authoring trainer; empty for built-ins
	Name                       string   `json:"name" binding:"required"`
	Description                string   `json:"description"`
	Category                   string   `json:"category" binding:"required,oneof=cardio strength flexibility sports"`
	MuscleGroups               []string `json:"muscleGroups" binding:"required,min=1"`
	Equipment                  []string `json:"equipment"`
	Difficulty                 string   `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Instructions               []string `json:"instructions" binding:"required,min=1"`
	Tips                       []string `json:"tips"`
	Warnings                   []string `json:"warnings"`
	ImageURL                   string   `json:"imageUrl" binding:"omitempty,url"`
	VideoURL                   string   `json:"videoUrl" binding:"omitempty,url"` // Optional, validated as URL if provided
	EstimatedCaloriesPerMinute *float64 `json:"estimatedCaloriesPerMinute" binding:"omitempty,gte=0"`
}

func (r ExerciseRequest) input() service.ExerciseInput {
	return service.ExerciseInput{
		Name:                       r.Name,
		Description:                r.Description,
		Category:                   r.Category,
		MuscleGroups:               r.MuscleGroups,
		Equipment:                  r.Equipment,
		Difficulty:                 r.Difficulty,
		Instructions:               r.Instructions,
		Tips:                       r.Tips,
		Warnings:                   r.Warnings,
		ImageURL:                   r.ImageURL,
		VideoURL:                   r.VideoURL,
		EstimatedCaloriesPerMinute: r.EstimatedCaloriesPerMinute,
	}
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID                         string    `json:"id"`
	CreatedBy                  string    `json:"createdBy,omitempty"`
	Name                       string    `json:"name"`
	Description                string    `json:"description,omitempty"`
	Category                   string    `json:"category"`
	MuscleGroups               []string  `json:"muscleGroups"`
	Equipment                  []string  `json:"equipment"`
	Difficulty                 string    `json:"difficulty"`
	DifficultyLevel            int       `json:"difficultyLevel"`
	IsBodyweight               bool      `json:"isBodyweight"`
	Instructions               []string  `json:"instructions"`
	Tips                       []string  `json:"tips,omitempty"`
	Warnings                   []string  `json:"warnings,omitempty"`
	ImageURL                   string    `json:"imageUrl,omitempty"`
	VideoURL                   string    `json:"videoUrl,omitempty"`
	EstimatedCaloriesPerMinute *float64  `json:"estimatedCaloriesPerMinute,omitempty"`
	IsActive                   bool      `json:"isActive"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	resp := ExerciseResponse{
		ID:                         ex.ID.Hex(),
		Name:                       ex.Name,
		Description:                ex.Description,
		Category:                   ex.Category,
		MuscleGroups:               ex.MuscleGroups,
		Equipment:                  ex.Equipment,
		Difficulty:                 ex.Difficulty,
		DifficultyLevel:            ex.DifficultyLevel(),
		IsBodyweight:               ex.IsBodyweight(),
		Instructions:               ex.Instructions,
		Tips:                       ex.Tips,
		Warnings:                   ex.Warnings,
		ImageURL:                   ex.ImageURL,
		VideoURL:                   ex.VideoURL,
		EstimatedCaloriesPerMinute: ex.EstimatedCaloriesPerMinute,
		IsActive:                   ex.IsActive,
		CreatedAt:                  ex.CreatedAt,
		UpdatedAt:                  ex.UpdatedAt,
	}
	if ex.CreatedBy != nil {
		resp.CreatedBy = ex.CreatedBy.Hex()
	}
	return resp
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Create a new exercise
// @Description Adds an exercise to the library, optionally authored by a trainer.
// @Tags Exercises
// @Accept json
// @Produce json
// @Param exercise body ExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse "Exercise created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 409 {object} gin.H "Name already in use"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, err := optionalObjectID(req.TrainerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainerId format")
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), trainerID, req.input())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// ListExercises godoc
// @Summary List exercises
// @Tags Exercises
// @Produce json
// @Param category query string false "cardio, strength, flexibility or sports"
// @Param muscleGroup query string false "Muscle group"
// @Param difficulty query string false "beginner, intermediate or advanced"
// @Param equipment query string false "Required equipment"
// @Param q query string false "Name search"
// @Param createdBy query string false "Authoring trainer ID"
// @Param active query bool false "Only active exercises"
// @Param bodyweight query bool false "Only exercises without equipment"
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	createdBy, err := optionalObjectID(c.Query("createdBy"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid createdBy format")
		return
	}
	q := service.ExerciseQuery{
		ExerciseFilter: domain.ExerciseFilter{
			Category:    c.Query("category"),
			MuscleGroup: c.Query("muscleGroup"),
			Difficulty:  c.Query("difficulty"),
			Equipment:   c.Query("equipment"),
			NameQuery:   c.Query("q"),
			CreatedBy:   createdBy,
			ActiveOnly:  boolQuery(c, "active"),
		},
		BodyweightOnly: boolQuery(c, "bodyweight"),
	}

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), q)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// UpdateExercise replaces an exercise. A trainerId in the body must match the author.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, err := optionalObjectID(req.TrainerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainerId format")
		return
	}
	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), trainerID, id, req.input())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

func (h *ExerciseHandler) SetExerciseStatus(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	exercise, err := h.exerciseService.SetExerciseActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// DeleteExercise handles DELETE /exercises/:id?trainerId=...
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	trainerID, err := optionalObjectID(c.Query("trainerId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainerId format")
		return
	}
	if err := h.exerciseService.DeleteExercise(c.Request.Context(), trainerID, id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
