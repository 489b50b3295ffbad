package main

import (
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack/internal/config"
	"github.com/studytrack/studytrack/internal/handlers"
	"github.com/studytrack/studytrack/internal/middleware"
	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices, cfg *config.Config) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for credential-bearing routes
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		delivery := "sync"
		if q := services.GetTaskQueue(); q != nil && q.IsAsync() {
			delivery = "async"
		}
		c.JSON(200, gin.H{"status": "ok", "service": "studytrack", "reminderDelivery": delivery})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
		}

		// Invite-code preview (public, so a join link can show the team name)
		teamHandler := handlers.NewTeamHandler(models.GetDB())
		api.GET("/teams/invite/:code", teamHandler.GetByInviteCode)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			// Auth
			protected.GET("/auth/profile", svc.authHandler.Profile)

			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(models.GetDB())
			protected.GET("/dashboard/stats", dashboardHandler.GetStats)

			// Students
			studentHandler := handlers.NewStudentHandler(models.GetDB())
			protected.GET("/students", studentHandler.List)
			protected.GET("/students/:id", studentHandler.GetByID)

			// Teams
			protected.GET("/teams", teamHandler.List)
			protected.GET("/teams/:id", teamHandler.GetByID)
			protected.POST("/teams", teamHandler.Create)
			protected.PUT("/teams/:id", teamHandler.Update)
			protected.DELETE("/teams/:id", teamHandler.Delete)
			protected.POST("/teams/join-by-code", teamHandler.JoinByCode)
			protected.POST("/teams/:id/join/:studentId", teamHandler.Join)
			protected.GET("/teams/:id/tasks", teamHandler.ListTasks)
			protected.GET("/teams/:id/all-tasks", teamHandler.ListAllTasks)

			// Subjects
			subjectHandler := handlers.NewSubjectHandler(models.GetDB())
			protected.GET("/subjects", subjectHandler.List)
			protected.GET("/subjects/:id", subjectHandler.GetByID)
			protected.POST("/subjects", subjectHandler.Create)
			protected.PUT("/subjects/:id", subjectHandler.Update)
			protected.DELETE("/subjects/:id", subjectHandler.Delete)

			// Tasks
			taskHandler := handlers.NewTaskHandler(models.GetDB())
			protected.GET("/tasks", taskHandler.List)
			protected.GET("/tasks/student/:id", taskHandler.ListByStudent)
			protected.GET("/tasks/team/:id", taskHandler.ListByTeam)
			protected.GET("/tasks/:id", taskHandler.GetByID)
			protected.GET("/tasks/:id/status", taskHandler.GetStatus)
			protected.POST("/tasks", taskHandler.Create)
			protected.PUT("/tasks/:id", taskHandler.Update)
			protected.DELETE("/tasks/:id", taskHandler.Delete)
			protected.POST("/tasks/:id/toggle", taskHandler.Toggle)
			protected.POST("/tasks/:id/assign/:studentId", taskHandler.Assign)

			// Results
			resultHandler := handlers.NewResultHandler(models.GetDB())
			protected.GET("/results", resultHandler.List)
			protected.GET("/results/student/:id", resultHandler.ListByStudent)
			protected.GET("/results/task/:id", resultHandler.ListByTask)
			protected.GET("/results/status/:taskId", resultHandler.GetStatus)
			protected.GET("/results/:id", resultHandler.GetByID)
			protected.POST("/results", resultHandler.Create)
			protected.PUT("/results/:id", resultHandler.Update)
			protected.DELETE("/results/:id", resultHandler.Delete)
			protected.POST("/results/toggle/:taskId", resultHandler.Toggle)

			// Deadlines
			deadlineHandler := handlers.NewDeadlineHandler(models.GetDB())
			protected.GET("/deadlines", deadlineHandler.List)
			protected.GET("/deadlines/upcoming", deadlineHandler.ListUpcoming)
			protected.GET("/deadlines/:id", deadlineHandler.GetByID)
			protected.POST("/deadlines", deadlineHandler.Create)
			protected.PUT("/deadlines/:id", deadlineHandler.Update)
			protected.DELETE("/deadlines/:id", deadlineHandler.Delete)

			// Activity Logs
			activityLogHandler := handlers.NewActivityLogHandler(models.GetDB())
			protected.GET("/activity-logs", activityLogHandler.List)
		}
	}
}
