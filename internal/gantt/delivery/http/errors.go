package http

import (
	"errors"
	"net/http"

	"project-management/internal/gantt"
	"project-management/pkg/datemath"
	pkgErrors "project-management/pkg/errors"
)

var (
	errProjectNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
	errTaskNotFound    = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
)

// mapError translates domain errors into HTTP errors. Unknown errors pass through
// and are rendered as 500 by response.Error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, gantt.ErrProjectNotFound):
		return errProjectNotFound
	case errors.Is(err, gantt.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, gantt.ErrMissingDates):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, gantt.ErrInvalidDateRange),
		errors.Is(err, gantt.ErrInvalidProgress),
		errors.Is(err, gantt.ErrUnsupportedTaskKind),
		errors.Is(err, gantt.ErrEmptyID),
		errors.Is(err, datemath.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
