package model

import "time"

// Project is a persisted project record together with its work breakdown structure.
// Zero planned dates mean the value is absent in the store.
type Project struct {
	ID               string
	ProjectNumber    string
	Name             string
	Status           string
	PlannedStartDate time.Time
	PlannedEndDate   time.Time
	ProgressPercent  float64 // 0-100
	Phases           []Phase // ordered by SequenceOrder
}

// Phase is a persisted project phase.
type Phase struct {
	ID               string
	ProjectID        string
	PhaseNumber      int
	Name             string
	SequenceOrder    int
	Status           string
	PlannedStartDate time.Time
	PlannedEndDate   time.Time
	ProgressPercent  float64
	CreatedAt        time.Time
	WorkPackages     []WorkPackage // ordered by CreatedAt
}

// WorkPackage is a persisted work package inside a phase.
type WorkPackage struct {
	ID               string
	PhaseID          string
	PackageNumber    string
	Name             string
	Status           string
	PlannedStartDate time.Time
	PlannedEndDate   time.Time
	ProgressPercent  float64
	CreatedAt        time.Time
}
