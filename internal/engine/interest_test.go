package engine

import (
	"testing"

	"learnpath-backend/internal/models"
)

func activitiesOfTypes(types ...string) []models.Activity {
	activities := make([]models.Activity, 0, len(types))
	for _, typ := range types {
		activities = append(activities, models.Activity{ActivityType: typ})
	}
	return activities
}

func TestDominantInterest(t *testing.T) {
	tests := []struct {
		name     string
		types    []string
		expected string
		ok       bool
	}{
		{"clear majority", []string{"reading", "course", "reading"}, "reading", true},
		{"single activity", []string{"research"}, "research", true},
		{"no activities", nil, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dominant, ok := DominantInterest(activitiesOfTypes(tc.types...))
			if ok != tc.ok {
				t.Fatalf("Expected ok=%v, got %v", tc.ok, ok)
			}
			if dominant != tc.expected {
				t.Errorf("Expected dominant %q, got %q", tc.expected, dominant)
			}
		})
	}
}

func TestDominantInterestTieBreak(t *testing.T) {
	// A reaches count 2 before B does, so A wins the tie.
	dominant, ok := DominantInterest(activitiesOfTypes("A", "B", "A", "B"))
	if !ok {
		t.Fatal("Expected a dominant interest")
	}
	if dominant != "A" {
		t.Errorf("Expected tie to resolve to A, got %q", dominant)
	}

	// Reversed traversal order flips the winner.
	dominant, _ = DominantInterest(activitiesOfTypes("B", "A", "B", "A"))
	if dominant != "B" {
		t.Errorf("Expected tie to resolve to B, got %q", dominant)
	}
}

func TestMapActivityTypeToResourceType(t *testing.T) {
	tests := []struct {
		activityType string
		expected     string
	}{
		{"reading", models.ResourceArticle},
		{"course", models.ResourceCourse},
		{"research", models.ResourceResearch},
		{"homework", models.ResourceTeaching},
		{"", models.ResourceTeaching},
	}

	for _, tc := range tests {
		if got := MapActivityTypeToResourceType(tc.activityType); got != tc.expected {
			t.Errorf("MapActivityTypeToResourceType(%q) = %q, want %q", tc.activityType, got, tc.expected)
		}
	}
}
