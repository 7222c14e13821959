// internal/api/trainer_handler.go
package api

import (
	"alcyxob/gymflow/internal/domain"
	"alcyxob/gymflow/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TrainerHandler struct {
	trainerService service.TrainerService
	logger         *zap.Logger
}

func NewTrainerHandler(trainerService service.TrainerService, logger *zap.Logger) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService, logger: logger}
}

// --- DTOs for Trainer Management ---

type CertificationRequest struct {
	Name           string  `json:"name" binding:"required"`
	Institution    string  `json:"institution" binding:"required"`
	DateObtained   string  `json:"dateObtained" binding:"required"` // YYYY-MM-DD
	ExpirationDate *string `json:"expirationDate"`
}

func (r CertificationRequest) certification() (domain.Certification, error) {
	obtained, err := parseDate(r.DateObtained)
	if err != nil {
		return domain.Certification{}, err
	}
	cert := domain.Certification{Name: r.Name, Institution: r.Institution, DateObtained: obtained}
	if r.ExpirationDate != nil && *r.ExpirationDate != "" {
		exp, err := parseDate(*r.ExpirationDate)
		if err != nil {
			return domain.Certification{}, err
		}
		cert.ExpirationDate = &exp
	}
	return cert, nil
}

type CreateTrainerRequest struct {
	GymID           string                 `json:"gymId" binding:"required"`
	Name            string                 `json:"name" binding:"required"`
	Email           string                 `json:"email" binding:"required,email"`
	Phone           string                 `json:"phone"`
	Bio             string                 `json:"bio"`
	Specialties     []string               `json:"specialties" binding:"required,min=1"`
	Certifications  []CertificationRequest `json:"certifications" binding:"omitempty,dive"`
	ExperienceYears int                    `json:"experienceYears" binding:"min=0"`
	HourlyRate      decimal.Decimal        `json:"hourlyRate"`
	Availability    domain.Availability    `json:"availability"`
}

// UpdateTrainerRequest is a partial update; omitted fields keep their value.
type UpdateTrainerRequest struct {
	Name            *string              `json:"name"`
	Phone           *string              `json:"phone"`
	Bio             *string              `json:"bio"`
	Specialties     []string             `json:"specialties"`
	ExperienceYears *int                 `json:"experienceYears"`
	HourlyRate      *decimal.Decimal     `json:"hourlyRate"`
	Availability    *domain.Availability `json:"availability"`
}

type DayAvailabilityRequest struct {
	IsAvailable *bool  `json:"isAvailable" binding:"required"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

type UploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmUploadRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

type CertificationResponse struct {
	Name           string     `json:"name"`
	Institution    string     `json:"institution"`
	DateObtained   time.Time  `json:"dateObtained"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	IsValid        bool       `json:"isValid"`
	HasDocument    bool       `json:"hasDocument"`
}

type TrainerResponse struct {
	ID              string                  `json:"id"`
	GymID           string                  `json:"gymId"`
	Name            string                  `json:"name"`
	Email           string                  `json:"email"`
	Phone           string                  `json:"phone,omitempty"`
	Bio             string                  `json:"bio,omitempty"`
	Specialties     []string                `json:"specialties"`
	Certifications  []CertificationResponse `json:"certifications"`
	ExperienceYears int                     `json:"experienceYears"`
	ExperienceLevel string                  `json:"experienceLevel"`
	HourlyRate      decimal.Decimal         `json:"hourlyRate"`
	Availability    domain.Availability     `json:"availability"`
	HasProfileImage bool                    `json:"hasProfileImage"`
	IsActive        bool                    `json:"isActive"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// MapTrainerToResponse converts a domain.Trainer; certificate validity is judged at now.
func MapTrainerToResponse(t *domain.Trainer, now time.Time) TrainerResponse {
	if t == nil {
		return TrainerResponse{}
	}
	certs := make([]CertificationResponse, len(t.Certifications))
	for i, c := range t.Certifications {
		certs[i] = CertificationResponse{
			Name:           c.Name,
			Institution:    c.Institution,
			DateObtained:   c.DateObtained,
			ExpirationDate: c.ExpirationDate,
			IsValid:        c.IsValid(now),
			HasDocument:    c.DocumentKey != "",
		}
	}
	return TrainerResponse{
		ID:              t.ID.Hex(),
		GymID:           t.GymID.Hex(),
		Name:            t.Name,
		Email:           t.Email,
		Phone:           t.Phone,
		Bio:             t.Bio,
		Specialties:     t.Specialties,
		Certifications:  certs,
		ExperienceYears: t.ExperienceYears,
		ExperienceLevel: t.ExperienceLevel(),
		HourlyRate:      t.HourlyRate,
		Availability:    t.Availability,
		HasProfileImage: t.ProfileImageKey != "",
		IsActive:        t.IsActive,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func MapTrainersToResponse(trainers []domain.Trainer, now time.Time) []TrainerResponse {
	responses := make([]TrainerResponse, len(trainers))
	for i := range trainers {
		responses[i] = MapTrainerToResponse(&trainers[i], now)
	}
	return responses
}

// SlotCheckResponse reports whether a requested slot can be booked.
type SlotCheckResponse struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

func (h *TrainerHandler) respond(c *gin.Context, status int, t *domain.Trainer) {
	c.JSON(status, MapTrainerToResponse(t, time.Now().UTC()))
}

// --- Handler Methods for Trainer Management ---

// CreateTrainer godoc
// @Summary Register a trainer at a gym
// @Tags Trainers
// @Accept json
// @Produce json
// @Param trainer body CreateTrainerRequest true "Trainer details"
// @Success 201 {object} TrainerResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Gym not found"
// @Failure 409 {object} gin.H "Email already in use"
// @Router /trainers [post]
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	gymID, err := primitive.ObjectIDFromHex(req.GymID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid gymId format")
		return
	}
	certs := make([]domain.Certification, 0, len(req.Certifications))
	for _, cr := range req.Certifications {
		cert, err := cr.certification()
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid certification date: "+err.Error())
			return
		}
		certs = append(certs, cert)
	}

	trainer, err := h.trainerService.CreateTrainer(c.Request.Context(), service.TrainerInput{
		GymID:           gymID,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Bio:             req.Bio,
		Specialties:     req.Specialties,
		Certifications:  certs,
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		Availability:    req.Availability,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusCreated, trainer)
}

// ListTrainers handles GET /trainers?specialty=yoga.
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.trainerService.ListTrainersBySpecialty(c.Request.Context(), c.Query("specialty"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapTrainersToResponse(trainers, time.Now().UTC()))
}

// ListGymTrainers handles GET /gyms/:id/trainers.
func (h *TrainerHandler) ListGymTrainers(c *gin.Context) {
	gymID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	trainers, err := h.trainerService.ListTrainersByGym(c.Request.Context(), gymID, boolQuery(c, "active"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapTrainersToResponse(trainers, time.Now().UTC()))
}

// FindAvailableTrainers godoc
// @Summary Trainers of a gym who can take a whole slot
// @Tags Trainers
// @Produce json
// @Param day query string true "Day of week"
// @Param start query string true "HH:MM"
// @Param end query string true "HH:MM"
// @Success 200 {array} TrainerResponse
// @Router /gyms/{id}/trainers/available [get]
func (h *TrainerHandler) FindAvailableTrainers(c *gin.Context) {
	gymID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	trainers, err := h.trainerService.FindAvailableTrainers(c.Request.Context(), gymID, c.Query("day"), c.Query("start"), c.Query("end"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapTrainersToResponse(trainers, time.Now().UTC()))
}

func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	trainer, err := h.trainerService.GetTrainer(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, trainer)
}

func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainer, err := h.trainerService.UpdateTrainer(c.Request.Context(), id, service.TrainerUpdate{
		Name:            req.Name,
		Phone:           req.Phone,
		Bio:             req.Bio,
		Specialties:     req.Specialties,
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		Availability:    req.Availability,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, trainer)
}

func (h *TrainerHandler) SetTrainerStatus(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainer, err := h.trainerService.SetTrainerActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, trainer)
}

func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.trainerService.DeleteTrainer(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Availability ---

// UpdateDayAvailability godoc
// @Summary Replace one day of a trainer's availability
// @Tags Trainers
// @Accept json
// @Produce json
// @Param day path string true "Day of week"
// @Param body body DayAvailabilityRequest true "Window or day off"
// @Success 200 {object} TrainerResponse
// @Router /trainers/{id}/availability/{day} [put]
func (h *TrainerHandler) UpdateDayAvailability(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req DayAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainer, err := h.trainerService.UpdateDayAvailability(c.Request.Context(), id, c.Param("day"), *req.IsAvailable, req.Start, req.End)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, trainer)
}

// CheckSlot godoc
// @Summary Check whether a slot fits inside the trainer's availability
// @Description A slot outside availability is a normal answer, not an error.
// @Tags Trainers
// @Produce json
// @Param day query string true "Day of week"
// @Param start query string true "HH:MM"
// @Param end query string true "HH:MM"
// @Success 200 {object} SlotCheckResponse
// @Failure 400 {object} gin.H "Malformed day or time"
// @Router /trainers/{id}/availability/check [get]
func (h *TrainerHandler) CheckSlot(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	decision, err := h.trainerService.CheckSlot(c.Request.Context(), id, c.Query("day"), c.Query("start"), c.Query("end"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SlotCheckResponse{Accepted: decision.Accepted, Reason: string(decision.Reason)})
}

// IsAvailableAt handles GET /trainers/:id/availability?day=monday&time=10:00.
func (h *TrainerHandler) IsAvailableAt(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	available, err := h.trainerService.IsTrainerAvailableAt(c.Request.Context(), id, c.Query("day"), c.Query("time"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// --- Certifications ---

func (h *TrainerHandler) AddCertification(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	cert, err := req.certification()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid certification date: "+err.Error())
		return
	}
	trainer, err := h.trainerService.AddCertification(c.Request.Context(), id, cert)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, trainer)
}

func (h *TrainerHandler) RemoveCertification(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	trainer, err := h.trainerService.RemoveCertification(c.Request.Context(), id, c.Param("name"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, trainer)
}

// --- Media ---

// RequestProfileImageUploadURL godoc
// @Summary Get a presigned URL to upload a profile image
// @Tags Trainers
// @Accept json
// @Produce json
// @Param body body UploadURLRequest true "Content type of the image"
// @Success 200 {object} service.UploadURLResponse
// @Failure 400 {object} gin.H "Unsupported content type"
// @Failure 503 {object} gin.H "Media storage not configured"
// @Router /trainers/{id}/profile-image/upload-url [post]
func (h *TrainerHandler) RequestProfileImageUploadURL(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	resp, err := h.trainerService.RequestProfileImageUploadURL(c.Request.Context(), id, req.ContentType)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrainerHandler) ConfirmProfileImage(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainer, err := h.trainerService.ConfirmProfileImage(c.Request.Context(), id, req.ObjectKey)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, trainer)
}

func (h *TrainerHandler) GetProfileImageURL(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	url, err := h.trainerService.GetProfileImageURL(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	if url == "" {
		abortWithError(c, http.StatusNotFound, "Trainer has no profile image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}

func (h *TrainerHandler) RequestCertificationUploadURL(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	resp, err := h.trainerService.RequestCertificationUploadURL(c.Request.Context(), id, c.Param("name"), req.ContentType)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrainerHandler) ConfirmCertificationDocument(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}
	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainer, err := h.trainerService.ConfirmCertificationDocument(c.Request.Context(), id, c.Param("name"), req.ObjectKey)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	h.respond(c, http.StatusOK, trainer)
}
