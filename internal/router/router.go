package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/internal/handlers"
	"github.com/taskboard-dev/taskboard/internal/middleware"
	"github.com/taskboard-dev/taskboard/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.DELETE("/account", middleware.AuthMiddleware(), handlers.DeleteAccount)
		}

		board := api.Group("", middleware.AuthMiddleware())
		{
			board.GET("/columns", handlers.ListColumns)
			board.POST("/columns", handlers.CreateColumn)
			board.GET("/columns/:column_id", handlers.GetColumn)
			board.PUT("/columns/:column_id", handlers.UpdateColumn)
			board.DELETE("/columns/:column_id", handlers.DeleteColumn)

			board.GET("/tasks", handlers.ListTasks)
			board.POST("/tasks", handlers.CreateTask)
			board.GET("/tasks/:task_id", handlers.GetTask)
			board.PUT("/tasks/:task_id", handlers.UpdateTask)
			board.DELETE("/tasks/:task_id", handlers.DeleteTask)
			board.POST("/tasks/:task_id/move", handlers.MoveTask)

			board.GET("/board", handlers.GetBoard)
			board.POST("/reorder-columns", handlers.ReorderColumns)
			board.POST("/reorder-tasks", handlers.ReorderTasks)
		}
	}

	return r
}
