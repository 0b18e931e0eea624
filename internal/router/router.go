package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focuscontrol/internal/handler"
	"focuscontrol/internal/middleware"
)

func New(
	taskHandler *handler.TaskHandler,
	focusHandler *handler.FocusHandler,
	coachHandler *handler.CoachHandler,
	corsOrigins []string,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	tasks := api.Group("/tasks")
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.ListOpen)

	api.GET("/state", focusHandler.State)

	sessions := api.Group("/sessions")
	sessions.POST("/start", focusHandler.Start)
	sessions.POST("/end", focusHandler.End)
	sessions.POST("/interruptions", focusHandler.LogInterruption)

	api.POST("/breaks/skip", focusHandler.SkipBreak)

	api.POST("/coach", coachHandler.Message)

	api.GET("/summary/today", focusHandler.SummaryToday)

	return engine
}
