package main

import (
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/handlers"
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/middleware"
	"github.com/bharadwajaaniseti/storyfoundry-backend/internal/models"
	"github.com/bharadwajaaniseti/storyfoundry-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for unauthenticated auth routes
	authLimiter := middleware.NewRateLimiter(10, 20)

	// Health check
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	db := models.GetDB()

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		authHandler := svc.authHandler
		userHandler := handlers.NewUserHandler(db)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/register", userHandler.Register)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Auth
			protected.GET("/auth/me", authHandler.GetCurrentUser)
			protected.POST("/auth/logout", authHandler.Logout)
			protected.POST("/auth/change-password", authHandler.ChangePassword)

			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(db)
			protected.GET("/dashboard/stats", dashboardHandler.Stats)

			// Projects
			projectHandler := handlers.NewProjectHandler(db)
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.Get)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)
			protected.DELETE("/projects/:id", projectHandler.Delete)

			// Chapters
			chapterHandler := handlers.NewChapterHandler(db)
			protected.GET("/projects/:id/chapters", chapterHandler.List)
			protected.GET("/projects/:id/chapters/:chapterId", chapterHandler.Get)
			protected.POST("/projects/:id/chapters", chapterHandler.Create)
			protected.PUT("/projects/:id/chapters/:chapterId", chapterHandler.Update)
			protected.DELETE("/projects/:id/chapters/:chapterId", chapterHandler.Delete)

			// Editor change workflow (legacy wire format)
			approvalHandler := handlers.NewApprovalHandler(db)
			protected.GET("/projects/:id/changes", approvalHandler.ListChanges)
			protected.POST("/projects/:id/changes", approvalHandler.SubmitChange)
			protected.POST("/projects/:id/decisions", approvalHandler.Decide)

			// Collaborators
			collabHandler := handlers.NewCollaboratorHandler(db)
			protected.GET("/projects/:id/collaborators", collabHandler.List)
			protected.POST("/projects/:id/collaborators", collabHandler.Invite)
			protected.DELETE("/projects/:id/collaborators/:collabId", collabHandler.Revoke)
			protected.POST("/collaborations/:id/accept", collabHandler.Accept)

			// Activity timeline
			activityHandler := handlers.NewActivityHandler(db)
			protected.GET("/projects/:id/activity", activityHandler.List)

			// Notifications
			notificationHandler := handlers.NewNotificationHandler(db)
			protected.GET("/notifications", notificationHandler.List)
			protected.PUT("/notifications/read-all", notificationHandler.MarkAllRead)
			protected.PUT("/notifications/:id/read", notificationHandler.MarkRead)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired(), middleware.AuditLog())
		{
			// Users
			userHandler := handlers.NewUserHandler(db)
			admin.GET("/users", userHandler.List)
			admin.PUT("/users/:id", userHandler.Update)
			admin.DELETE("/users/:id", userHandler.Delete)

			// System Logs
			systemLogHandler := handlers.NewSystemLogHandler(db)
			admin.GET("/system-logs", systemLogHandler.List)
			admin.GET("/system-logs/modules", systemLogHandler.GetModules)
			admin.GET("/system-logs/retention", systemLogHandler.GetRetentionDays)
			admin.POST("/system-logs/cleanup", systemLogHandler.Cleanup)
		}
	}
}
