package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	ganttHTTP "project-management/internal/gantt/delivery/http"
	ganttRepo "project-management/internal/gantt/repository/sqlstore"
	ganttUC "project-management/internal/gantt/usecase"
	"project-management/internal/middleware"
	"project-management/pkg/datemath"
)

// setupGanttDomain wires store, use case and handler of the gantt domain.
func (srv HTTPServer) setupGanttDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	dates, err := datemath.NewParser(srv.timezone)
	if err != nil {
		return err
	}

	repo := ganttRepo.New(srv.db, srv.dialect, srv.l)
	uc := ganttUC.New(srv.l, repo)
	h := ganttHTTP.New(srv.l, uc, dates)

	// /api/v1/projects/:projectId/gantt
	ganttHTTP.RegisterRoutes(api.Group("/projects"), h, mw)

	srv.l.Infof(ctx, "Gantt domain registered")
	return nil
}
