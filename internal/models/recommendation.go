package models

import (
	"time"

	"github.com/google/uuid"
)

// TeacherRecommendation records a teacher pushing a resource to a student.
// At most one row exists per (teacher, student, resource) triple; repeating
// the same recommendation is a no-op.
type TeacherRecommendation struct {
	ID         uuid.UUID `json:"id"`
	TeacherID  uuid.UUID `json:"teacher_id"`
	StudentID  uuid.UUID `json:"student_id"`
	ResourceID uuid.UUID `json:"resource_id"`
	Timestamp  time.Time `json:"timestamp"`
}

type RecommendRequest struct {
	StudentID  string `json:"student_id"`
	ResourceID string `json:"resource_id"`
}
