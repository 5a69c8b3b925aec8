package engine

import (
	"sort"
	"time"

	"learnpath-backend/internal/models"
)

const progressPreviewLimit = 5

// ActivityStatus derives the status of an activity at the given instant:
// completed once the end time has passed, pending until the start time
// arrives, in progress otherwise.
func ActivityStatus(a models.Activity, now time.Time) string {
	if a.EndTime != nil && a.EndTime.Before(now) {
		return models.ActivityCompleted
	}
	if a.StartTime.After(now) {
		return models.ActivityPending
	}
	return models.ActivityInProgress
}

// ComputeProgress folds a learner's full activity and goal lists into a single
// report: completion counts, an overall percentage (integer division, 0 when
// there is nothing to count), the five most recently started activities
// annotated with their derived status, and up to five pending goals ordered by
// due date. Goals without a due date sort after all dated goals, keeping their
// relative input order.
func ComputeProgress(activities []models.Activity, goals []models.Goal, now time.Time) models.ProgressReport {
	report := models.ProgressReport{
		TotalActivities:  len(activities),
		TotalGoals:       len(goals),
		RecentActivities: make([]models.ActivityStatus, 0, progressPreviewLimit),
		PendingGoals:     make([]models.Goal, 0, progressPreviewLimit),
	}

	for _, a := range activities {
		if ActivityStatus(a, now) == models.ActivityCompleted {
			report.CompletedActivities++
		}
	}
	for _, g := range goals {
		if g.Status == models.GoalCompleted {
			report.CompletedGoals++
		}
	}

	if total := report.TotalActivities + report.TotalGoals; total > 0 {
		report.OverallProgress = (report.CompletedActivities + report.CompletedGoals) * 100 / total
	}

	recent := make([]models.Activity, len(activities))
	copy(recent, activities)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].StartTime.After(recent[j].StartTime)
	})
	for _, a := range recent {
		if len(report.RecentActivities) == progressPreviewLimit {
			break
		}
		report.RecentActivities = append(report.RecentActivities, models.ActivityStatus{
			ID:           a.ID,
			ActivityName: a.ActivityName,
			ActivityType: a.ActivityType,
			StartTime:    a.StartTime,
			EndTime:      a.EndTime,
			Status:       ActivityStatus(a, now),
		})
	}

	pending := make([]models.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Status != models.GoalCompleted {
			pending = append(pending, g)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		di, dj := pending[i].DueDate, pending[j].DueDate
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.Before(*dj)
	})
	for _, g := range pending {
		if len(report.PendingGoals) == progressPreviewLimit {
			break
		}
		report.PendingGoals = append(report.PendingGoals, g)
	}

	return report
}
