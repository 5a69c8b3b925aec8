package models

import (
	"time"

	"github.com/google/uuid"
)

// Resource type tags. The set is extensible; "teaching" doubles as the default
// bucket when an activity type has no dedicated mapping.
const (
	ResourceCourse   = "course"
	ResourceArticle  = "article"
	ResourceTeaching = "teaching"
	ResourceResearch = "research"
)

type Resource struct {
	ID           uuid.UUID `json:"id"`
	ResourceName string    `json:"resource_name"`
	ResourceType string    `json:"resource_type"`
	Description  string    `json:"description"`
	ResourceURL  string    `json:"resource_url"`
	CreatedBy    uuid.UUID `json:"created_by"`
	// AverageRating is a cache of the feedback rows, recomputed on every
	// feedback upsert. Nil means the resource has never been rated.
	AverageRating *float64   `json:"average_rating,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

type ResourceRequest struct {
	ResourceName string `json:"resource_name"`
	ResourceType string `json:"resource_type"`
	Description  string `json:"description"`
	ResourceURL  string `json:"resource_url"`
}

type ResourceFeedback struct {
	ID         uuid.UUID `json:"id"`
	ResourceID uuid.UUID `json:"resource_id"`
	StudentID  uuid.UUID `json:"student_id"`
	Rating     int       `json:"rating"`
	Feedback   string    `json:"feedback"`
	Timestamp  time.Time `json:"timestamp"`
}

type ResourceFeedbackRequest struct {
	ResourceID string `json:"resource_id"`
	Rating     int    `json:"rating"`
	Feedback   string `json:"feedback"`
}
