package usecase

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"project-management/internal/gantt/repository"
	pkgLog "project-management/pkg/log"
)

const tracerName = "project-management/internal/gantt/usecase"

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	tracer trace.Tracer
	now    func() time.Time
}

// New creates a new gantt UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
}
