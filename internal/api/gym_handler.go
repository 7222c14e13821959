package api

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/service"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GymHandler struct {
	gymService service.GymService
	logger     *zap.Logger
}

func NewGymHandler(gymService service.GymService, logger *zap.Logger) *GymHandler {
	return &GymHandler{gymService: gymService, logger: logger}
}

// --- DTOs ---

// GymRequest is the payload for creating or replacing a gym.
type GymRequest struct {
	Name           string                `json:"name" binding:"required"`
	Address        domain.Address        `json:"address"`
	Phone          string                `json:"phone" binding:"required"`
	Email          string                `json:"email" binding:"required,email"`
	OperatingHours domain.OperatingHours `json:"operatingHours"`
	Facilities     []string              `json:"facilities" binding:"required,min=1"`
	MaxCapacity    int                   `json:"maxCapacity" binding:"required,gt=0"`
}

func (r GymRequest) input() service.GymInput {
	return service.GymInput{
		Name:           r.Name,
		Address:        r.Address,
		Phone:          r.Phone,
		Email:          r.Email,
		OperatingHours: r.OperatingHours,
		Facilities:     r.Facilities,
		MaxCapacity:    r.MaxCapacity,
	}
}

// StatusRequest toggles the active flag of a record.
type StatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type GymResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Address        domain.Address        `json:"address"`
	Phone          string                `json:"phone"`
	Email          string                `json:"email"`
	OperatingHours domain.OperatingHours `json:"operatingHours"`
	Facilities     []string              `json:"facilities"`
	MaxCapacity    int                   `json:"maxCapacity"`
	IsActive       bool                  `json:"isActive"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

func MapGymToResponse(g *domain.Gym) GymResponse {
	if g == nil {
		return GymResponse{}
	}
	return GymResponse{
		ID:             g.ID.Hex(),
		Name:           g.Name,
		Address:        g.Address,
		Phone:          g.Phone,
		Email:          g.Email,
		OperatingHours: g.OperatingHours,
		Facilities:     g.Facilities,
		MaxCapacity:    g.MaxCapacity,
		IsActive:       g.IsActive,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func MapGymsToResponse(gyms []domain.Gym) []GymResponse {
	responses := make([]GymResponse, len(gyms))
	for i := range gyms {
		responses[i] = MapGymToResponse(&gyms[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateGym godoc
// @Summary Register a gym
// @Tags Gyms
// @Accept json
// @Produce json
// @Param gym body GymRequest true "Gym details"
// @Success 201 {object} GymResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Email already in use"
// @Router /gyms [post]
func (h *GymHandler) CreateGym(c *gin.Context) {
	var req GymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	gym, err := h.gymService.CreateGym(c.Request.Context(), req.input())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MapGymToResponse(gym))
}

// ListGyms godoc
// @Summary List gyms
// @Tags Gyms
// @Produce json
// @Param city query string false "Only gyms in this city"
// @Param active query bool false "Only active gyms"
// @Success 200 {array} GymResponse
// @Router /gyms [get]
func (h *GymHandler) ListGyms(c *gin.Context) {
	var (
		gyms []domain.Gym
		err  error
	)
	if city := c.Query("city"); city != "" {
		gyms, err = h.gymService.ListGymsByCity(c.Request.Context(), city)
	} else {
		gyms, err = h.gymService.ListGyms(c.Request.Context(), boolQuery(c, "active"))
	}
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapGymsToResponse(gyms))
}

func (h *GymHandler) GetGym(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	gym, err := h.gymService.GetGym(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapGymToResponse(gym))
}

func (h *GymHandler) UpdateGym(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req GymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	gym, err := h.gymService.UpdateGym(c.Request.Context(), id, req.input())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapGymToResponse(gym))
}

func (h *GymHandler) SetGymStatus(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	gym, err := h.gymService.SetGymActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapGymToResponse(gym))
}

func (h *GymHandler) DeleteGym(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.gymService.DeleteGym(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// IsGymOpen godoc
// @Summary Check whether a gym is open
// @Tags Gyms
// @Produce json
// @Param day query string true "Day of week, e.g. monday"
// @Param time query string true "Clock time HH:MM"
// @Success 200 {object} gin.H "{open: bool}"
// @Failure 400 {object} gin.H "Malformed day or time"
// @Router /gyms/{id}/open [get]
func (h *GymHandler) IsGymOpen(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	open, err := h.gymService.IsGymOpen(c.Request.Context(), id, c.Query("day"), c.Query("time"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"open": open})
}

func (h *GymHandler) CheckCapacity(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	current, err := strconv.Atoi(c.Query("current"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "current must be an integer")
		return
	}
	fits, err := h.gymService.CheckCapacity(c.Request.Context(), id, current)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withinCapacity": fits})
}
