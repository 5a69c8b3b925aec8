package models

import (
	"time"

	"github.com/google/uuid"
)

// Derived activity statuses. An activity is completed once its end time has
// passed, pending until its start time arrives, and in progress in between.
const (
	ActivityCompleted  = "completed"
	ActivityPending    = "pending"
	ActivityInProgress = "in_progress"
)

type Activity struct {
	ID           uuid.UUID  `json:"id"`
	StudentID    uuid.UUID  `json:"student_id"`
	ActivityName string     `json:"activity_name"`
	ActivityType string     `json:"activity_type"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Description  string     `json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ActivityRequest struct {
	ActivityName string     `json:"activity_name"`
	ActivityType string     `json:"activity_type"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	Description  string     `json:"description"`
}
