package http

import (
	"github.com/gin-gonic/gin"

	"project-management/internal/middleware"
)

// RegisterRoutes maps the gantt routes under rg, which is expected to be /api/v1/projects.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := rg.Group("/:projectId/gantt", mw.RateLimit())
	{
		g.GET("", h.GetSchedule)
		g.GET("/critical-path", h.GetCriticalPath)
		g.PUT("/tasks/:taskId/dates", h.UpdateTaskDates)
		g.PUT("/tasks/:taskId/progress", h.UpdateTaskProgress)
	}
}
