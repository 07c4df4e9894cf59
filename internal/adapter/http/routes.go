package http

import (
	"github.com/gin-gonic/gin"

	"taskhub/internal/adapter/http/handlers"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/pkg/auth"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens *auth.TokenManager,
	healthHandler *handlers.HealthHandler,
	taskHandler *handlers.TaskHandler,
	notificationHandler *handlers.NotificationHandler,
	userHandler *handlers.UserHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/register", userHandler.Register)
		api.POST("/login", userHandler.Login)
	}

	private := api.Group("")
	private.Use(middleware.AuthMiddleware(tokens))
	{
		private.GET("/tasks", taskHandler.ListTasks)
		private.POST("/tasks", taskHandler.CreateTask)
		private.GET("/tasks/:id", taskHandler.GetTask)
		private.PATCH("/tasks/:id", taskHandler.UpdateTask)
		private.DELETE("/tasks/:id", taskHandler.DeleteTask)
		private.GET("/notifications", notificationHandler.ListNotifications)
		private.PATCH("/notifications", notificationHandler.MarkRead)
		private.GET("/users", userHandler.ListUsers)
	}
}
