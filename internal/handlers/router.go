package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillshare-lk/user-service/internal/auth"
	"github.com/skillshare-lk/user-service/internal/models"
	"github.com/skillshare-lk/user-service/internal/repositories"
	"github.com/skillshare-lk/user-service/internal/services"
	"github.com/skillshare-lk/user-service/internal/storage"
	"github.com/skillshare-lk/user-service/internal/utils"
)

type HandlerManager struct {
	authHandler       *AuthHandler
	instructorHandler *InstructorHandler
	learnerHandler    *LearnerHandler
	adminHandler      *AdminHandler
	authMiddleware    *JWTAuthMiddleware
	serviceManager    services.ServiceManager
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokens *auth.TokenManager,
	userRepo repositories.UserRepository,
	store storage.Storage,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		authHandler:       NewAuthHandler(serviceManager.Auth(), store, logger),
		instructorHandler: NewInstructorHandler(serviceManager.Instructor(), logger),
		learnerHandler:    NewLearnerHandler(serviceManager.Learner(), logger),
		adminHandler:      NewAdminHandler(serviceManager.Admin(), serviceManager.Report(), logger),
		authMiddleware:    NewJWTAuthMiddleware(tokens, userRepo),
		serviceManager:    serviceManager,
	}
}

// SetupRoutes sets up all API routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/signup", hm.authHandler.Signup)
		authRoutes.POST("/login", hm.authHandler.Login)

		protected := authRoutes.Group("")
		protected.Use(hm.authMiddleware.AuthMiddleware())
		{
			protected.GET("/profile", hm.authHandler.GetProfile)

			// Instructor-only; no admin pass-through so students listings
			// stay scoped to the owning instructor.
			protected.GET("/students",
				hm.authMiddleware.RequireRole(models.RoleInstructor),
				hm.instructorHandler.GetStudents)

			admin := protected.Group("/admin")
			admin.Use(hm.authMiddleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/users", hm.adminHandler.ListUsers)
				admin.GET("/users/export", hm.adminHandler.ExportUsers)
				admin.GET("/stats", hm.adminHandler.GetStats)
				admin.PUT("/users/:userId/status", hm.adminHandler.UpdateUserStatus)
			}
		}
	}

	instructors := api.Group("/instructors")
	instructors.Use(hm.authMiddleware.AuthMiddleware())
	{
		instructors.GET("", hm.instructorHandler.List)
		instructors.POST("", hm.authMiddleware.RequireRole(models.RoleInstructor), hm.instructorHandler.CreateProfile)
		instructors.GET("/me", hm.authMiddleware.RequireRole(models.RoleInstructor), hm.instructorHandler.GetProfile)
		instructors.PUT("/me", hm.authMiddleware.RequireRole(models.RoleInstructor), hm.instructorHandler.UpdateProfile)
		instructors.DELETE("/me", hm.authMiddleware.RequireRole(models.RoleInstructor), hm.instructorHandler.DeleteProfile)
	}

	learners := api.Group("/learners")
	learners.Use(hm.authMiddleware.AuthMiddleware())
	{
		learners.GET("", hm.learnerHandler.List)
		learners.POST("", hm.authMiddleware.RequireRole(models.RoleLearner), hm.learnerHandler.CreateProfile)
		learners.GET("/me", hm.authMiddleware.RequireRole(models.RoleLearner), hm.learnerHandler.GetProfile)
		learners.PUT("/me", hm.authMiddleware.RequireRole(models.RoleLearner), hm.learnerHandler.UpdateProfile)
		learners.PUT("/me/progress", hm.authMiddleware.RequireRole(models.RoleLearner), hm.learnerHandler.UpdateProgress)
		learners.DELETE("/me", hm.authMiddleware.RequireRole(models.RoleLearner), hm.learnerHandler.DeleteProfile)
	}

	router.GET("/health", func(c *gin.Context) {
		if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": "user-service",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "user-service",
		})
	})
}
