package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"learnpath-backend/internal/engine"
	"learnpath-backend/internal/models"
	"learnpath-backend/internal/repository"
)

// ProgressService loads a learner's full activity and goal lists and hands
// them to the progress aggregator. Nothing is cached; the report is
// recomputed on every call.
type ProgressService struct {
	activityRepo *repository.ActivityRepo
	goalRepo     *repository.GoalRepo
}

func NewProgressService(activityRepo *repository.ActivityRepo, goalRepo *repository.GoalRepo) *ProgressService {
	return &ProgressService{
		activityRepo: activityRepo,
		goalRepo:     goalRepo,
	}
}

func (s *ProgressService) GetProgress(ctx context.Context, studentID uuid.UUID) (models.ProgressReport, error) {
	activities, err := s.activityRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return models.ProgressReport{}, err
	}

	goals, err := s.goalRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return models.ProgressReport{}, err
	}

	return engine.ComputeProgress(activities, goals, time.Now().UTC()), nil
}
