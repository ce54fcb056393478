package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/taskdesk/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// User administration - admin only
	userGroup := router.Group("/users")
	userGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		userGroup.GET("", ListUsers)
		userGroup.POST("", CreateUser)
		userGroup.PUT("/:id/role", UpdateUserRole)
		userGroup.POST("/:id/deactivate", DeactivateUser)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", UpdateProject)
		projectGroup.DELETE("/:id", DeleteProject)
		projectGroup.GET("/:id/tasks", ListProjectTasks)
		projectGroup.GET("/:id/members", ListMembers)
		projectGroup.POST("/:id/members", AddMember)
		projectGroup.DELETE("/:id/members/:userId", RemoveMember)
		projectGroup.GET("/:id/audit", GetProjectHistory)
	}

	// Task endpoints - protected by AuthMiddleware
	taskGroup := router.Group("/tasks")
	taskGroup.Use(middleware.AuthMiddleware())
	{
		taskGroup.POST("", CreateTask)
		taskGroup.GET("/:id", GetTask)
		taskGroup.PUT("/:id", UpdateTask)
		taskGroup.PATCH("/:id/status", UpdateTaskStatus)
		taskGroup.GET("/:id/comments", ListComments)
		taskGroup.POST("/:id/comments", CreateComment)
	}

	// Comment deletion - protected by AuthMiddleware
	commentGroup := router.Group("/comments")
	commentGroup.Use(middleware.AuthMiddleware())
	{
		commentGroup.DELETE("/:id", DeleteComment)
	}

	// File attachment endpoints - protected by AuthMiddleware
	fileGroup := router.Group("/files")
	fileGroup.Use(middleware.AuthMiddleware())
	{
		fileGroup.POST("", UploadFile)
		fileGroup.GET("/:id", DownloadFile)
		fileGroup.DELETE("/:id", DeleteFile)
	}

	// Notification endpoints - protected by AuthMiddleware
	notificationGroup := router.Group("/notifications")
	notificationGroup.Use(middleware.AuthMiddleware())
	{
		notificationGroup.GET("", ListNotifications)
		notificationGroup.POST("/read-all", MarkAllNotificationsRead)
		notificationGroup.POST("/:id/read", MarkNotificationRead)
	}

	// Report export - protected by AuthMiddleware, role-gated in the service
	reportGroup := router.Group("/reports")
	reportGroup.Use(middleware.AuthMiddleware())
	{
		reportGroup.GET("/export", ExportReport)
	}

	// External scheduler trigger - guarded by a shared secret, not a session
	cronGroup := router.Group("/cron")
	{
		cronGroup.GET("/deadline-reminders", DescribeDeadlineReminders)
		cronGroup.POST("/deadline-reminders", RunDeadlineReminders)
	}
}
