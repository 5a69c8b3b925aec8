package engine

import (
	"github.com/google/uuid"

	"learnpath-backend/internal/models"
)

// personalRecommendationLimit bounds the interest-driven feed.
const personalRecommendationLimit = 3

// systemRankedLimit is how many top-rated resources back the teacher-aware
// feed.
const systemRankedLimit = 10

// PersonalRecommendations builds the interest-driven feed: up to three
// resources whose type matches the learner's dominant interest, in catalog
// order, padded with other catalog resources when fewer than three match.
// With no recent activity the feed falls back entirely to catalog-order fill.
func PersonalRecommendations(recentActivities []models.Activity, catalog []models.Resource) []models.Resource {
	picks := make([]models.Resource, 0, personalRecommendationLimit)
	seen := make(map[uuid.UUID]bool, personalRecommendationLimit)

	if dominant, ok := DominantInterest(recentActivities); ok {
		wantType := MapActivityTypeToResourceType(dominant)
		for _, res := range catalog {
			if res.ResourceType != wantType {
				continue
			}
			picks = append(picks, res)
			seen[res.ID] = true
			if len(picks) == personalRecommendationLimit {
				return picks
			}
		}
	}

	for _, res := range catalog {
		if seen[res.ID] {
			continue
		}
		picks = append(picks, res)
		seen[res.ID] = true
		if len(picks) == personalRecommendationLimit {
			break
		}
	}

	return picks
}

// MergeTeacherRecommendations builds the authoritative feed for a student:
// teacher-recommended resources first, in the order their recommendation rows
// were found and deduplicated by resource id, followed by the top system-ranked
// resources that no teacher already recommended. Recommendation rows pointing
// at resources that no longer resolve are dropped silently.
func MergeTeacherRecommendations(teacherRecs []models.TeacherRecommendation, catalog []models.Resource) []models.Resource {
	byID := make(map[uuid.UUID]models.Resource, len(catalog))
	for _, res := range catalog {
		byID[res.ID] = res
	}

	merged := make([]models.Resource, 0, len(teacherRecs)+systemRankedLimit)
	recommended := make(map[uuid.UUID]bool, len(teacherRecs))

	for _, rec := range teacherRecs {
		if recommended[rec.ResourceID] {
			continue
		}
		recommended[rec.ResourceID] = true
		if res, ok := byID[rec.ResourceID]; ok {
			merged = append(merged, res)
		}
	}

	for _, res := range RankByRating(catalog, systemRankedLimit) {
		if recommended[res.ID] {
			continue
		}
		merged = append(merged, res)
	}

	return merged
}
