package engine

import (
	"sort"

	"learnpath-backend/internal/models"
)

// RankByRating orders the catalog descending by cached average rating and
// returns the top k. Resources that have never been rated sort after every
// rated resource, keeping their original catalog order (stable sort), which
// also serves as the fill rule: when fewer than k resources are rated, the
// remaining slots are padded with unrated resources in catalog order.
func RankByRating(catalog []models.Resource, k int) []models.Resource {
	ranked := make([]models.Resource, len(catalog))
	copy(ranked, catalog)

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].AverageRating, ranked[j].AverageRating
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri > *rj
	})

	return top(ranked, k)
}

// RankByRecency orders the catalog descending by creation time and returns
// the top k. Resources without a creation timestamp sort last, in catalog
// order.
func RankByRecency(catalog []models.Resource, k int) []models.Resource {
	ranked := make([]models.Resource, len(catalog))
	copy(ranked, catalog)

	sort.SliceStable(ranked, func(i, j int) bool {
		ci, cj := ranked[i].CreatedAt, ranked[j].CreatedAt
		if ci == nil {
			return false
		}
		if cj == nil {
			return true
		}
		return ci.After(*cj)
	})

	return top(ranked, k)
}

func top(resources []models.Resource, k int) []models.Resource {
	if k < 0 {
		k = 0
	}
	if len(resources) > k {
		resources = resources[:k]
	}
	return resources
}
