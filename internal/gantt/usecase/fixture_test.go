package usecase_test

import (
	"time"

	"project-management/internal/model"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

// substationProject has two phases: Design with two work packages and Construction with one.
//
//	project      Jan 01 - Jan 21  (20 days)
//	ph-1 Design  Jan 01 - Jan 06  (5)   wp-1 Jan 01 - Jan 03 (2), wp-2 Jan 03 - Jan 06 (3)
//	ph-2 Build   Jan 06 - Jan 21  (15)  wp-3 Jan 06 - Jan 10 (4)
func substationProject() model.Project {
	return model.Project{
		ID:               "proj-1",
		ProjectNumber:    "PROJ-2025-001",
		Name:             "Substation",
		Status:           "in_progress",
		PlannedStartDate: day(time.January, 1),
		PlannedEndDate:   day(time.January, 21),
		ProgressPercent:  25,
		Phases: []model.Phase{
			{
				ID:               "ph-1",
				PhaseNumber:      1,
				Name:             "Design",
				SequenceOrder:    1,
				Status:           model.PhaseStatusCompleted,
				PlannedStartDate: day(time.January, 1),
				PlannedEndDate:   day(time.January, 6),
				ProgressPercent:  100,
				WorkPackages: []model.WorkPackage{
					{
						ID:               "wp-1",
						PackageNumber:    "WP-1.1",
						Name:             "Survey",
						Status:           model.WorkPackageStatusInspectionPassed,
						PlannedStartDate: day(time.January, 1),
						PlannedEndDate:   day(time.January, 3),
						ProgressPercent:  100,
					},
					{
						ID:               "wp-2",
						PackageNumber:    "WP-1.2",
						Name:             "Drawings",
						Status:           "unknown_status",
						PlannedStartDate: day(time.January, 3),
						PlannedEndDate:   day(time.January, 6),
						ProgressPercent:  50,
					},
				},
			},
			{
				ID:               "ph-2",
				PhaseNumber:      2,
				Name:             "Construction",
				SequenceOrder:    2,
				Status:           model.PhaseStatusInProgress,
				PlannedStartDate: day(time.January, 6),
				PlannedEndDate:   day(time.January, 21),
				WorkPackages: []model.WorkPackage{
					{
						ID:               "wp-3",
						PackageNumber:    "WP-2.1",
						Name:             "Foundations",
						Status:           model.WorkPackageStatusPending,
						PlannedStartDate: day(time.January, 6),
						PlannedEndDate:   day(time.January, 10),
					},
				},
			},
		},
	}
}
