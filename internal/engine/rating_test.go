package engine

import (
	"testing"

	"learnpath-backend/internal/models"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int
		expected float64
		ok       bool
	}{
		{"single rating", []int{4}, 4.0, true},
		{"mixed ratings", []int{1, 2, 3, 4, 5}, 3.0, true},
		{"non-integer mean", []int{4, 5}, 4.5, true},
		{"all max", []int{5, 5, 5}, 5.0, true},
		{"all min", []int{1, 1}, 1.0, true},
		{"empty leaves average unchanged", nil, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			feedback := make([]models.ResourceFeedback, 0, len(tc.ratings))
			for _, r := range tc.ratings {
				feedback = append(feedback, models.ResourceFeedback{Rating: r})
			}

			avg, ok := AverageRating(feedback)
			if ok != tc.ok {
				t.Fatalf("Expected ok=%v, got %v", tc.ok, ok)
			}
			if avg != tc.expected {
				t.Errorf("Expected average %v, got %v", tc.expected, avg)
			}
			if ok && (avg < 1.0 || avg > 5.0) {
				t.Errorf("Average %v outside [1.0, 5.0]", avg)
			}
		})
	}
}
