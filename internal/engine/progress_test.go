package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"learnpath-backend/internal/models"
)

var progressNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func activityAt(start time.Time, end *time.Time) models.Activity {
	return models.Activity{ID: uuid.New(), StartTime: start, EndTime: end}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestActivityStatus(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      *time.Time
		expected string
	}{
		{"ended in the past", progressNow.Add(-48 * time.Hour), timePtr(progressNow.Add(-24 * time.Hour)), models.ActivityCompleted},
		{"starts in the future", progressNow.Add(24 * time.Hour), nil, models.ActivityPending},
		{"started, no end", progressNow.Add(-2 * time.Hour), nil, models.ActivityInProgress},
		{"ends in the future", progressNow.Add(-2 * time.Hour), timePtr(progressNow.Add(2 * time.Hour)), models.ActivityInProgress},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ActivityStatus(activityAt(tc.start, tc.end), progressNow)
			if got != tc.expected {
				t.Errorf("Expected status %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestComputeProgressEmpty(t *testing.T) {
	report := ComputeProgress(nil, nil, progressNow)

	if report.OverallProgress != 0 {
		t.Errorf("Expected overall progress 0, got %d", report.OverallProgress)
	}
	if len(report.RecentActivities) != 0 || len(report.PendingGoals) != 0 {
		t.Error("Expected empty preview lists")
	}
}

func TestComputeProgressPercentage(t *testing.T) {
	done := timePtr(progressNow.Add(-time.Hour))
	activities := []models.Activity{
		activityAt(progressNow.Add(-72*time.Hour), done),
		activityAt(progressNow.Add(-48*time.Hour), done),
		activityAt(progressNow.Add(-time.Hour), nil),
	}
	goals := []models.Goal{
		{ID: uuid.New(), Status: models.GoalCompleted},
	}

	report := ComputeProgress(activities, goals, progressNow)

	if report.CompletedActivities != 2 {
		t.Errorf("Expected 2 completed activities, got %d", report.CompletedActivities)
	}
	if report.CompletedGoals != 1 {
		t.Errorf("Expected 1 completed goal, got %d", report.CompletedGoals)
	}
	// floor(3 * 100 / 4) == 75
	if report.OverallProgress != 75 {
		t.Errorf("Expected overall progress 75, got %d", report.OverallProgress)
	}
}

func TestComputeProgressRecentActivities(t *testing.T) {
	activities := make([]models.Activity, 0, 7)
	for i := 0; i < 7; i++ {
		a := activityAt(progressNow.Add(-time.Duration(i)*24*time.Hour), nil)
		a.ActivityName = string(rune('a' + i))
		activities = append(activities, a)
	}

	report := ComputeProgress(activities, nil, progressNow)

	if len(report.RecentActivities) != 5 {
		t.Fatalf("Expected 5 recent activities, got %d", len(report.RecentActivities))
	}
	// Most recently started first.
	if report.RecentActivities[0].ActivityName != "a" || report.RecentActivities[4].ActivityName != "e" {
		t.Errorf("Unexpected recent ordering: first=%q last=%q",
			report.RecentActivities[0].ActivityName, report.RecentActivities[4].ActivityName)
	}
	for _, a := range report.RecentActivities {
		if a.Status == "" {
			t.Error("Expected every recent activity to carry a derived status")
		}
	}
}

func TestComputeProgressPendingGoals(t *testing.T) {
	goals := []models.Goal{
		{ID: uuid.New(), GoalName: "done", Status: models.GoalCompleted, DueDate: timePtr(progressNow)},
		{ID: uuid.New(), GoalName: "undated", Status: models.GoalPending},
		{ID: uuid.New(), GoalName: "later", Status: models.GoalInProgress, DueDate: timePtr(progressNow.Add(96 * time.Hour))},
		{ID: uuid.New(), GoalName: "soon", Status: models.GoalPending, DueDate: timePtr(progressNow.Add(24 * time.Hour))},
	}

	report := ComputeProgress(nil, goals, progressNow)

	if len(report.PendingGoals) != 3 {
		t.Fatalf("Expected 3 pending goals, got %d", len(report.PendingGoals))
	}
	// Ascending by due date, null due dates last.
	wantOrder := []string{"soon", "later", "undated"}
	for i, want := range wantOrder {
		if report.PendingGoals[i].GoalName != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, report.PendingGoals[i].GoalName)
		}
	}
}

func TestComputeProgressCapsPendingGoals(t *testing.T) {
	goals := make([]models.Goal, 0, 8)
	for i := 0; i < 8; i++ {
		goals = append(goals, models.Goal{
			ID:      uuid.New(),
			Status:  models.GoalPending,
			DueDate: timePtr(progressNow.Add(time.Duration(i) * 24 * time.Hour)),
		})
	}

	report := ComputeProgress(nil, goals, progressNow)
	if len(report.PendingGoals) != 5 {
		t.Errorf("Expected pending goals capped at 5, got %d", len(report.PendingGoals))
	}
}
