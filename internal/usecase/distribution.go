package usecase

import "customer-feedback/internal/data/entity"

// RatingDistribution holds per-rating counts; index i is rating i+1
type RatingDistribution [5]int

// CalculateDistribution counts comments per rating bucket. Ratings outside
// 1..5 are skipped.
func CalculateDistribution(comments []entity.Comment) RatingDistribution {
	var dist RatingDistribution
	for _, c := range comments {
		if !c.Rating.Valid() {
			continue
		}
		dist[c.Rating-entity.MinRating]++
	}
	return dist
}

func (d RatingDistribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

func (d RatingDistribution) Values() []int {
	return d[:]
}

func distributionFromValues(values []int) (RatingDistribution, bool) {
	var dist RatingDistribution
	if len(values) != len(dist) {
		return dist, false
	}
	for i, n := range values {
		if n < 0 {
			return dist, false
		}
		dist[i] = n
	}
	return dist, true
}
