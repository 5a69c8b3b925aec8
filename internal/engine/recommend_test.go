package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"learnpath-backend/internal/models"
)

func typedResource(name, resourceType string) models.Resource {
	return models.Resource{ID: uuid.New(), ResourceName: name, ResourceType: resourceType}
}

func TestPersonalRecommendationsInterestDriven(t *testing.T) {
	catalog := []models.Resource{
		typedResource("course-1", models.ResourceCourse),
		typedResource("article-1", models.ResourceArticle),
		typedResource("article-2", models.ResourceArticle),
		typedResource("teaching-1", models.ResourceTeaching),
		typedResource("article-3", models.ResourceArticle),
	}

	// Dominant interest "reading" maps to articles.
	activities := activitiesOfTypes("reading", "course", "reading")

	assertNames(t, PersonalRecommendations(activities, catalog), "article-1", "article-2", "article-3")
}

func TestPersonalRecommendationsFillsWhenShortOnMatches(t *testing.T) {
	catalog := []models.Resource{
		typedResource("course-1", models.ResourceCourse),
		typedResource("article-1", models.ResourceArticle),
		typedResource("teaching-1", models.ResourceTeaching),
	}

	activities := activitiesOfTypes("reading")

	// One article match, then catalog-order fill. No duplicates.
	assertNames(t, PersonalRecommendations(activities, catalog), "article-1", "course-1", "teaching-1")
}

func TestPersonalRecommendationsNoActivities(t *testing.T) {
	catalog := []models.Resource{
		typedResource("course-1", models.ResourceCourse),
		typedResource("article-1", models.ResourceArticle),
		typedResource("teaching-1", models.ResourceTeaching),
		typedResource("research-1", models.ResourceResearch),
	}

	// No dominant interest: pure catalog-order fill, capped at three.
	got := PersonalRecommendations(nil, catalog)
	assertNames(t, got, "course-1", "article-1", "teaching-1")

	seen := make(map[uuid.UUID]bool)
	for _, res := range got {
		if seen[res.ID] {
			t.Errorf("Duplicate resource %q in recommendations", res.ResourceName)
		}
		seen[res.ID] = true
	}
}

func TestPersonalRecommendationsSmallCatalog(t *testing.T) {
	catalog := []models.Resource{typedResource("only", models.ResourceCourse)}

	if got := PersonalRecommendations(nil, catalog); len(got) != 1 {
		t.Errorf("Expected 1 recommendation from 1-resource catalog, got %d", len(got))
	}
}

func TestMergeTeacherRecommendations(t *testing.T) {
	top := 4.9
	low := 2.0
	picked := typedResource("picked", models.ResourceArticle)
	picked.AverageRating = &top
	other := typedResource("other", models.ResourceCourse)
	other.AverageRating = &low
	unranked := typedResource("unranked", models.ResourceTeaching)

	catalog := []models.Resource{picked, other, unranked}

	recs := []models.TeacherRecommendation{
		{TeacherID: uuid.New(), StudentID: uuid.New(), ResourceID: picked.ID, Timestamp: time.Now()},
	}

	got := MergeTeacherRecommendations(recs, catalog)

	// Teacher pick first, then system-ranked resources excluding it.
	assertNames(t, got, "picked", "other", "unranked")
}

func TestMergeTeacherRecommendationsDedupesAcrossTeachers(t *testing.T) {
	res := typedResource("shared", models.ResourceArticle)
	catalog := []models.Resource{res}

	recs := []models.TeacherRecommendation{
		{TeacherID: uuid.New(), ResourceID: res.ID},
		{TeacherID: uuid.New(), ResourceID: res.ID},
	}

	got := MergeTeacherRecommendations(recs, catalog)
	if len(got) != 1 {
		t.Fatalf("Expected shared resource to appear once, got %d entries", len(got))
	}
}

func TestMergeTeacherRecommendationsDropsDanglingIDs(t *testing.T) {
	res := typedResource("kept", models.ResourceArticle)
	catalog := []models.Resource{res}

	recs := []models.TeacherRecommendation{
		{TeacherID: uuid.New(), ResourceID: uuid.New()}, // deleted resource
		{TeacherID: uuid.New(), ResourceID: res.ID},
	}

	assertNames(t, MergeTeacherRecommendations(recs, catalog), "kept")
}

func TestMergeTeacherRecommendationsNoTeacherRows(t *testing.T) {
	catalog := []models.Resource{
		typedResource("a", models.ResourceArticle),
		typedResource("b", models.ResourceCourse),
	}

	// Pure system feed when no teacher has intervened.
	if got := MergeTeacherRecommendations(nil, catalog); len(got) != 2 {
		t.Errorf("Expected 2 system-ranked resources, got %d", len(got))
	}
}
