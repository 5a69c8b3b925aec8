package engine

import "learnpath-backend/internal/models"

// AverageRating computes the arithmetic mean of the ratings in the supplied
// feedback rows. The second return value reports whether an updated average
// was produced: an empty set leaves the cached average untouched, so callers
// get (0, false) and skip the write.
func AverageRating(feedback []models.ResourceFeedback) (float64, bool) {
	if len(feedback) == 0 {
		return 0, false
	}

	sum := 0
	for _, f := range feedback {
		sum += f.Rating
	}

	return float64(sum) / float64(len(feedback)), true
}
