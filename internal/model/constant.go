package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Phase statuses.
const (
	PhaseStatusPending    = "pending"
	PhaseStatusInProgress = "in_progress"
	PhaseStatusCompleted  = "completed"
	PhaseStatusOnHold     = "on_hold"
	PhaseStatusCancelled  = "cancelled"
)

// Work package statuses. The first five carry the same values as the phase statuses.
const (
	WorkPackageStatusPending           = "pending"
	WorkPackageStatusInProgress        = "in_progress"
	WorkPackageStatusCompleted         = "completed"
	WorkPackageStatusOnHold            = "on_hold"
	WorkPackageStatusCancelled         = "cancelled"
	WorkPackageStatusInspectionPending = "inspection_pending"
	WorkPackageStatusInspectionPassed  = "inspection_passed"
	WorkPackageStatusInspectionFailed  = "inspection_failed"
)
