package gantt

import "errors"

// Domain-specific errors for the gantt package.
var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrMissingDates        = errors.New("planned start or end date is missing")
	ErrInvalidDateRange    = errors.New("start date is after end date")
	ErrInvalidProgress     = errors.New("progress must be between 0 and 1")
	ErrUnsupportedTaskKind = errors.New("task kind is not supported by this operation")
	ErrEmptyID             = errors.New("id is empty")
)
