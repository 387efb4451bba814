package repository

import "time"

// UpdateDatesOptions holds the new planned range of a phase or work package.
type UpdateDatesOptions struct {
	ID               string
	PlannedStartDate time.Time
	PlannedEndDate   time.Time
}

// UpdateProgressOptions holds the new progress of a record, as a 0-100 percentage.
type UpdateProgressOptions struct {
	ID              string
	ProgressPercent int
}
