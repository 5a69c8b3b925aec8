package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"learnpath-backend/internal/engine"
	"learnpath-backend/internal/models"
	"learnpath-backend/internal/repository"
)

const (
	recentActivityWindow = 10
	rankedCacheTTL       = 5 * time.Minute

	popularCacheKey = "resources:popular"
	recentCacheKey  = "resources:recent"
)

// RecommendationService wires the engine's recommendation and rating logic to
// the persistence and cache collaborators. Role checks happen in the router;
// by the time a call lands here it is authorized.
type RecommendationService struct {
	resourceRepo *repository.ResourceRepo
	activityRepo *repository.ActivityRepo
	feedbackRepo *repository.FeedbackRepo
	recRepo      *repository.RecommendationRepo
	userRepo     *repository.UserRepo
	redis        *redis.Client
	pubsub       *redis.Client
}

func NewRecommendationService(
	resourceRepo *repository.ResourceRepo,
	activityRepo *repository.ActivityRepo,
	feedbackRepo *repository.FeedbackRepo,
	recRepo *repository.RecommendationRepo,
	userRepo *repository.UserRepo,
	redisClient *redis.Client,
	pubsubClient *redis.Client,
) *RecommendationService {
	return &RecommendationService{
		resourceRepo: resourceRepo,
		activityRepo: activityRepo,
		feedbackRepo: feedbackRepo,
		recRepo:      recRepo,
		userRepo:     userRepo,
		redis:        redisClient,
		pubsub:       pubsubClient,
	}
}

// GetMyRecommendations builds the interest-driven feed for a learner from
// their ten most recent activities and the full catalog.
func (s *RecommendationService) GetMyRecommendations(ctx context.Context, studentID uuid.UUID) ([]models.Resource, error) {
	recent, err := s.activityRepo.ListRecentByStudent(ctx, studentID, recentActivityWindow)
	if err != nil {
		return nil, err
	}

	catalog, err := s.resourceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return engine.PersonalRecommendations(recent, catalog), nil
}

// GetRecommendationsForStudent builds the authoritative feed: teacher picks
// first, then top-rated system picks.
func (s *RecommendationService) GetRecommendationsForStudent(ctx context.Context, studentID uuid.UUID) ([]models.Resource, error) {
	recs, err := s.recRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.resourceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return engine.MergeTeacherRecommendations(recs, catalog), nil
}

// GetPopularResources returns the top-k resources by cached average rating,
// served from Redis for a few minutes at a time.
func (s *RecommendationService) GetPopularResources(ctx context.Context, k int) ([]models.Resource, error) {
	return s.rankedWithCache(ctx, popularCacheKey, k, engine.RankByRating)
}

// GetRecentResources returns the top-k most recently created resources.
func (s *RecommendationService) GetRecentResources(ctx context.Context, k int) ([]models.Resource, error) {
	return s.rankedWithCache(ctx, recentCacheKey, k, engine.RankByRecency)
}

func (s *RecommendationService) rankedWithCache(ctx context.Context, key string, k int, rank func([]models.Resource, int) []models.Resource) ([]models.Resource, error) {
	cacheKey := fmt.Sprintf("%s:%d", key, k)

	if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
		var resources []models.Resource
		if json.Unmarshal([]byte(cached), &resources) == nil {
			return resources, nil
		}
	}

	catalog, err := s.resourceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ranked := rank(catalog, k)

	if encoded, err := json.Marshal(ranked); err == nil {
		s.redis.Set(ctx, cacheKey, encoded, rankedCacheTTL)
	}

	return ranked, nil
}

// SubmitFeedback upserts a student's rating for a resource and synchronously
// recomputes the resource's cached average before returning it. A rating
// outside 1..5 or an unknown resource id is the caller's error.
func (s *RecommendationService) SubmitFeedback(ctx context.Context, studentID, resourceID uuid.UUID, rating int, text string) (float64, error) {
	if rating < 1 || rating > 5 {
		return 0, &ValidationError{Fields: map[string]string{"rating": "Rating must be between 1 and 5"}}
	}

	if _, err := s.resourceRepo.GetByID(ctx, resourceID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &NotFoundError{Message: "Resource not found"}
		}
		return 0, err
	}

	feedback := &models.ResourceFeedback{
		ResourceID: resourceID,
		StudentID:  studentID,
		Rating:     rating,
		Feedback:   text,
	}
	if err := s.feedbackRepo.Upsert(ctx, feedback); err != nil {
		return 0, err
	}

	all, err := s.feedbackRepo.ListByResource(ctx, resourceID)
	if err != nil {
		return 0, err
	}

	average, ok := engine.AverageRating(all)
	if !ok {
		// Unreachable right after an upsert, but the empty set is still not
		// an error.
		return 0, nil
	}

	if err := s.resourceRepo.UpdateAverageRating(ctx, resourceID, average); err != nil {
		return 0, err
	}

	s.InvalidateRankedCache(ctx)

	return average, nil
}

// Recommend records a teacher pushing a resource to a student. Repeating the
// same triple succeeds without creating a duplicate row. The student is
// notified over their websocket channel.
func (s *RecommendationService) Recommend(ctx context.Context, teacherID, studentID, resourceID uuid.UUID) error {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Message: "Resource not found"}
		}
		return err
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Message: "Student not found"}
		}
		return err
	}
	if student.Role != models.RoleStudent {
		return &ValidationError{Fields: map[string]string{"student_id": "Recommendations can only target students"}}
	}

	rec := &models.TeacherRecommendation{
		TeacherID:  teacherID,
		StudentID:  studentID,
		ResourceID: resourceID,
	}
	if err := s.recRepo.Insert(ctx, rec); err != nil {
		return err
	}

	s.notifyStudent(ctx, studentID, resource)

	return nil
}

// InvalidateRankedCache drops the cached popular/recent lists. Called after
// any write that can change ranking.
func (s *RecommendationService) InvalidateRankedCache(ctx context.Context) {
	iter := s.redis.Scan(ctx, 0, popularCacheKey+":*", 0).Iterator()
	for iter.Next(ctx) {
		s.redis.Del(ctx, iter.Val())
	}
	iter = s.redis.Scan(ctx, 0, recentCacheKey+":*", 0).Iterator()
	for iter.Next(ctx) {
		s.redis.Del(ctx, iter.Val())
	}
}

func (s *RecommendationService) notifyStudent(ctx context.Context, studentID uuid.UUID, resource *models.Resource) {
	payload, err := json.Marshal(map[string]interface{}{
		"type": "teacher_recommendation",
		"payload": map[string]string{
			"resource_id":   resource.ID.String(),
			"resource_name": resource.ResourceName,
			"resource_type": resource.ResourceType,
		},
	})
	if err != nil {
		return
	}
	s.pubsub.Publish(ctx, "user_updates:"+studentID.String(), payload)
}
