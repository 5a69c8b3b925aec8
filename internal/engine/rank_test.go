package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"learnpath-backend/internal/models"
)

func ratedResource(name string, rating float64) models.Resource {
	return models.Resource{ID: uuid.New(), ResourceName: name, AverageRating: &rating}
}

func unratedResource(name string) models.Resource {
	return models.Resource{ID: uuid.New(), ResourceName: name}
}

func names(resources []models.Resource) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.ResourceName)
	}
	return out
}

func assertNames(t *testing.T, got []models.Resource, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("Expected %d resources %v, got %v", len(want), want, gotNames)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q (full order: %v)", i, want[i], gotNames[i], gotNames)
		}
	}
}

func TestRankByRating(t *testing.T) {
	catalog := []models.Resource{
		ratedResource("mid", 3.0),
		unratedResource("never-a"),
		ratedResource("top", 4.8),
		unratedResource("never-b"),
		ratedResource("low", 1.5),
	}

	assertNames(t, RankByRating(catalog, 3), "top", "mid", "low")

	// Fill rule: unrated resources pad the result in catalog order.
	assertNames(t, RankByRating(catalog, 5), "top", "mid", "low", "never-a", "never-b")

	// Never fabricates resources.
	if got := RankByRating(catalog, 10); len(got) != 5 {
		t.Errorf("Expected catalog-exhausted result of 5, got %d", len(got))
	}
}

func TestRankByRatingDoesNotMutateCatalog(t *testing.T) {
	catalog := []models.Resource{
		ratedResource("b", 2.0),
		ratedResource("a", 5.0),
	}

	RankByRating(catalog, 2)

	if catalog[0].ResourceName != "b" || catalog[1].ResourceName != "a" {
		t.Error("RankByRating mutated its input catalog")
	}
}

func TestRankByRecency(t *testing.T) {
	at := func(daysAgo int) *time.Time {
		ts := time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour)
		return &ts
	}

	catalog := []models.Resource{
		{ID: uuid.New(), ResourceName: "old", CreatedAt: at(30)},
		{ID: uuid.New(), ResourceName: "undated"},
		{ID: uuid.New(), ResourceName: "new", CreatedAt: at(1)},
		{ID: uuid.New(), ResourceName: "mid", CreatedAt: at(10)},
	}

	assertNames(t, RankByRecency(catalog, 2), "new", "mid")
	assertNames(t, RankByRecency(catalog, 4), "new", "mid", "old", "undated")
}

func TestRankEmptyCatalog(t *testing.T) {
	if got := RankByRating(nil, 4); len(got) != 0 {
		t.Errorf("Expected empty result, got %d resources", len(got))
	}
	if got := RankByRecency(nil, 4); len(got) != 0 {
		t.Errorf("Expected empty result, got %d resources", len(got))
	}
}
