package app

import (
	"study_buddy_backend/docs"
	"study_buddy_backend/internal/config"
	"study_buddy_backend/internal/middleware"
	"study_buddy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/api/health", c.health.HealthCheck)

	// 所有业务接口共享同一身份解析：JWT > X-Device-ID > anonymous
	api := router.Group("/api")
	api.Use(middleware.IdentityMiddleware(cfg))
	{
		api.POST("/study", c.study.GenerateNotes)

		api.POST("/quiz", c.quiz.Generate)
		api.POST("/quiz/score", c.quiz.Score)

		api.POST("/planner", c.planner.GenerateSchedule)

		api.POST("/chat", c.chat.Reply)

		api.GET("/progress", c.progression.GetProgress)
		api.POST("/progress/events", c.progression.RecordEvent)
		api.POST("/checkin", c.progression.Checkin)

		api.GET("/library", c.library.List)
		api.POST("/library", c.library.Save)
		api.DELETE("/library/:topic", c.library.Delete)

		api.GET("/pomodoro", c.pomodoro.State)
		api.POST("/pomodoro/start", c.pomodoro.Start)
		api.POST("/pomodoro/pause", c.pomodoro.Pause)
		api.POST("/pomodoro/reset", c.pomodoro.Reset)

		api.GET("/motivation", c.motivation.GetCurrentMotivation)
	}
}
