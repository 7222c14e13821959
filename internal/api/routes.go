package api

import (
	"alcyxob/gymflow/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services bundles what the HTTP layer needs from the service package.
type Services struct {
	Gyms            service.GymService
	Trainers        service.TrainerService
	MemberCommands  service.MemberCommands
	MemberQueries   service.MemberQueries
	Exercises       service.ExerciseService
	WorkoutPlans    service.WorkoutPlanService
	WorkoutSessions service.WorkoutSessionService
}

func SetupRoutes(router *gin.Engine, logger *zap.Logger, svc Services) {
	gymHandler := NewGymHandler(svc.Gyms, logger.Named("GymHandler"))
	trainerHandler := NewTrainerHandler(svc.Trainers, logger.Named("TrainerHandler"))
	memberHandler := NewMemberHandler(svc.MemberCommands, svc.MemberQueries, logger.Named("MemberHandler"))
	exerciseHandler := NewExerciseHandler(svc.Exercises, logger.Named("ExerciseHandler"))
	planHandler := NewWorkoutPlanHandler(svc.WorkoutPlans, logger.Named("WorkoutPlanHandler"))
	sessionHandler := NewWorkoutSessionHandler(svc.WorkoutSessions, logger.Named("WorkoutSessionHandler"))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	// --- Gym Routes ---
	gymGroup := apiV1.Group("/gyms")
	{
		gymGroup.POST("", gymHandler.CreateGym)
		gymGroup.GET("", gymHandler.ListGyms)
		gymGroup.GET("/:id", gymHandler.GetGym)
		gymGroup.PUT("/:id", gymHandler.UpdateGym)
		gymGroup.PATCH("/:id/status", gymHandler.SetGymStatus)
		gymGroup.DELETE("/:id", gymHandler.DeleteGym)
		gymGroup.GET("/:id/open", gymHandler.IsGymOpen)
		gymGroup.GET("/:id/capacity", gymHandler.CheckCapacity)
		gymGroup.GET("/:id/trainers", trainerHandler.ListGymTrainers)
		gymGroup.GET("/:id/trainers/available", trainerHandler.FindAvailableTrainers)
	}

	// --- Trainer Routes ---
	trainerGroup := apiV1.Group("/trainers")
	{
		trainerGroup.POST("", trainerHandler.CreateTrainer)
		trainerGroup.GET("", trainerHandler.ListTrainers)
		trainerGroup.GET("/:id", trainerHandler.GetTrainer)
		trainerGroup.PUT("/:id", trainerHandler.UpdateTrainer)
		trainerGroup.PATCH("/:id/status", trainerHandler.SetTrainerStatus)
		trainerGroup.DELETE("/:id", trainerHandler.DeleteTrainer)

		trainerGroup.GET("/:id/availability", trainerHandler.IsAvailableAt)
		trainerGroup.GET("/:id/availability/check", trainerHandler.CheckSlot)
		trainerGroup.PUT("/:id/availability/:day", trainerHandler.UpdateDayAvailability)

		trainerGroup.POST("/:id/certifications", trainerHandler.AddCertification)
		trainerGroup.DELETE("/:id/certifications/:name", trainerHandler.RemoveCertification)
		trainerGroup.POST("/:id/certifications/:name/upload-url", trainerHandler.RequestCertificationUploadURL)
		trainerGroup.POST("/:id/certifications/:name/confirm", trainerHandler.ConfirmCertificationDocument)

		trainerGroup.POST("/:id/profile-image/upload-url", trainerHandler.RequestProfileImageUploadURL)
		trainerGroup.POST("/:id/profile-image/confirm", trainerHandler.ConfirmProfileImage)
		trainerGroup.GET("/:id/profile-image", trainerHandler.GetProfileImageURL)

		trainerGroup.GET("/:id/workout-plans", planHandler.ListTrainerPlans)
	}

	// --- Member Routes ---
	memberGroup := apiV1.Group("/members")
	{
		memberGroup.POST("", memberHandler.CreateMember)
		memberGroup.GET("", memberHandler.ListMembers)
		memberGroup.GET("/:id", memberHandler.GetMember)
		memberGroup.PUT("/:id", memberHandler.UpdateMember)
		memberGroup.DELETE("/:id", memberHandler.DeleteMember)
		memberGroup.GET("/:id/quote", memberHandler.QuotePrice)

		memberGroup.GET("/:id/workout-plans", planHandler.ListMemberPlans)
		memberGroup.GET("/:id/workout-sessions", sessionHandler.ListMemberSessions)
		memberGroup.GET("/:id/workout-sessions/active", sessionHandler.GetActiveSession)
		memberGroup.GET("/:id/statistics", sessionHandler.GetStatistics)
	}

	// --- Exercise Routes ---
	exerciseGroup := apiV1.Group("/exercises")
	{
		exerciseGroup.POST("", exerciseHandler.CreateExercise)
		exerciseGroup.GET("", exerciseHandler.ListExercises)
		exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
		exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
		exerciseGroup.PATCH("/:id/status", exerciseHandler.SetExerciseStatus)
		exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
	}

	// --- Workout Plan Routes ---
	planGroup := apiV1.Group("/workout-plans")
	{
		planGroup.POST("", planHandler.CreateWorkoutPlan)
		planGroup.GET("/:id", planHandler.GetWorkoutPlan)
		planGroup.PUT("/:id", planHandler.UpdateWorkoutPlan)
		planGroup.POST("/:id/activate", planHandler.ActivateWorkoutPlan)
		planGroup.POST("/:id/deactivate", planHandler.DeactivateWorkoutPlan)
		planGroup.DELETE("/:id", planHandler.DeleteWorkoutPlan)
		planGroup.POST("/:id/exercises", planHandler.AddExercise)
		planGroup.DELETE("/:id/exercises/:exerciseId", planHandler.RemoveExercise)
		planGroup.GET("/:id/sessions", sessionHandler.ListPlanSessions)
	}

	// --- Workout Session Routes ---
	sessionGroup := apiV1.Group("/workout-sessions")
	{
		sessionGroup.POST("", sessionHandler.StartSession)
		sessionGroup.GET("/:id", sessionHandler.GetSession)
		sessionGroup.DELETE("/:id", sessionHandler.DeleteSession)
		sessionGroup.POST("/:id/pause", sessionHandler.PauseSession)
		sessionGroup.POST("/:id/resume", sessionHandler.ResumeSession)
		sessionGroup.POST("/:id/complete", sessionHandler.CompleteSession)
		sessionGroup.POST("/:id/cancel", sessionHandler.CancelSession)
		sessionGroup.POST("/:id/progress", sessionHandler.RecordProgress)
	}
}
