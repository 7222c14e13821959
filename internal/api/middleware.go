package api

import (
	"alcyxob/gymflow/internal/schedule"
	"alcyxob/gymflow/internal/service"
	"alcyxob/gymflow/internal/storage"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request with zap.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIp", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request handled", fields...)
		}
	}
}

// Recovery turns panics into 500 responses and logs them.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				abortWithError(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// statusFor maps service and policy errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, schedule.ErrInvalidArgument),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, storage.ErrUnsupportedContentType),
		errors.Is(err, service.ErrObjectKeyMismatch),
		errors.Is(err, service.ErrUploadNotFound):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrGymNotFound),
		errors.Is(err, service.ErrTrainerNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrWorkoutPlanNotFound),
		errors.Is(err, service.ErrWorkoutSessionNotFound),
		errors.Is(err, service.ErrCertificationNotFound):
		return http.StatusNotFound

	case errors.Is(err, schedule.ErrActiveSessionExists),
		errors.Is(err, schedule.ErrOverlappingPlan),
		errors.Is(err, schedule.ErrOutsideAvailability),
		errors.Is(err, schedule.ErrInvalidTransition),
		errors.Is(err, service.ErrGymEmailTaken),
		errors.Is(err, service.ErrTrainerEmailTaken),
		errors.Is(err, service.ErrMemberEmailTaken),
		errors.Is(err, service.ErrExerciseNameTaken),
		errors.Is(err, service.ErrPlanExpired),
		errors.Is(err, service.ErrPlanExerciseExists),
		errors.Is(err, service.ErrPlanExerciseMissing),
		errors.Is(err, service.ErrSessionNotInProgress):
		return http.StatusConflict

	case errors.Is(err, service.ErrExerciseAccessDenied):
		return http.StatusForbidden

	case errors.Is(err, storage.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// handleServiceError writes the mapped status for err. Rejections carry their
// reason and the conflicting record; unexpected errors are logged and hidden.
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Unexpected service error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		_ = c.Error(err)
		abortWithError(c, status, "Internal server error")
		return
	}

	var rejection *schedule.RejectionError
	if errors.As(err, &rejection) {
		body := gin.H{"error": err.Error(), "reason": rejection.Reason}
		if rejection.ConflictingID != "" {
			body["conflictingId"] = rejection.ConflictingID
		}
		c.AbortWithStatusJSON(status, body)
		return
	}
	abortWithError(c, status, err.Error())
}

// objectIDParam parses the named path parameter, writing a 400 on failure.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}

// optionalObjectID parses a hex id that may be empty.
func optionalObjectID(hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func boolQuery(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}

const dateLayout = "2006-01-02"

// parseDate accepts a calendar date ("2025-01-16") or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
