package engine

import "learnpath-backend/internal/models"

// DominantInterest tallies activity types over the supplied recent activities
// (callers pass them sorted by start time descending; the order is not changed
// here) and returns the type with the strictly highest count. On a tie the
// winner is the type that reached the running maximum first in traversal
// order. Empty input means no dominant interest.
func DominantInterest(activities []models.Activity) (string, bool) {
	if len(activities) == 0 {
		return "", false
	}

	counts := make(map[string]int, len(activities))
	best := ""
	bestCount := 0

	for _, a := range activities {
		counts[a.ActivityType]++
		if counts[a.ActivityType] > bestCount {
			best = a.ActivityType
			bestCount = counts[a.ActivityType]
		}
	}

	return best, true
}

// MapActivityTypeToResourceType maps a dominant activity type onto the
// resource type recommended for it. Unknown types fall into the teaching
// bucket.
func MapActivityTypeToResourceType(activityType string) string {
	switch activityType {
	case "reading":
		return models.ResourceArticle
	case "course":
		return models.ResourceCourse
	case "research":
		return models.ResourceResearch
	default:
		return models.ResourceTeaching
	}
}
