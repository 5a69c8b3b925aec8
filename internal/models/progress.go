package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgressReport is recomputed in full on every request; it has no persisted
// identity.
type ProgressReport struct {
	OverallProgress     int              `json:"overall_progress"`
	TotalActivities     int              `json:"total_activities"`
	CompletedActivities int              `json:"completed_activities"`
	TotalGoals          int              `json:"total_goals"`
	CompletedGoals      int              `json:"completed_goals"`
	RecentActivities    []ActivityStatus `json:"recent_activities"`
	PendingGoals        []Goal           `json:"pending_goals"`
}

// ActivityStatus is an activity annotated with its derived status.
type ActivityStatus struct {
	ID           uuid.UUID  `json:"id"`
	ActivityName string     `json:"activity_name"`
	ActivityType string     `json:"activity_type"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Status       string     `json:"status"`
}
