package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal statuses. Goals are created pending and only move by explicit updates.
const (
	GoalPending    = "pending"
	GoalInProgress = "in_progress"
	GoalCompleted  = "completed"
)

type Goal struct {
	ID              uuid.UUID  `json:"id"`
	StudentID       uuid.UUID  `json:"student_id"`
	GoalName        string     `json:"goal_name"`
	GoalDescription string     `json:"goal_description"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Priority        int        `json:"priority"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

type GoalRequest struct {
	GoalName        string     `json:"goal_name"`
	GoalDescription string     `json:"goal_description"`
	DueDate         *time.Time `json:"due_date"`
	Priority        int        `json:"priority"`
}

type GoalStatusRequest struct {
	Status string `json:"status"`
}

func ValidGoalStatus(s string) bool {
	return s == GoalPending || s == GoalInProgress || s == GoalCompleted
}
