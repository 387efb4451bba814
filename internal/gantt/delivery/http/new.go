package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"project-management/internal/gantt"
	"project-management/pkg/datemath"
	"project-management/pkg/log"
)

// Handler is the public interface for the gantt HTTP delivery layer.
type Handler interface {
	GetSchedule(c *gin.Context)
	GetCriticalPath(c *gin.Context)
	UpdateTaskDates(c *gin.Context)
	UpdateTaskProgress(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    gantt.UseCase
	dates *datemath.Parser
	now   func() time.Time
}

// New creates a new HTTP handler for the gantt domain. dates resolves the
// date expressions accepted by the dates update route.
func New(l log.Logger, uc gantt.UseCase, dates *datemath.Parser) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		now:   time.Now,
	}
}
