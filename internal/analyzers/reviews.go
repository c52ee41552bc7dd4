package analyzers

import (
	"github.com/wonny/wbsight/internal/contracts"
)

// negativeRatingMax is the valuation at or below which a review is
// triaged as negative
const negativeRatingMax = 3

// recentNegativeLimit caps how many negative reviews are surfaced
const recentNegativeLimit = 3

// AnalyzeReviews summarizes raw reviews for one product: total count,
// mean rating (0 with no reviews), five-star count, and the most
// recent negative reviews in input order (the feedbacks API returns
// newest first).
func AnalyzeReviews(reviews []contracts.Review) contracts.ReviewsResult {
	result := contracts.ReviewsResult{
		RecentNegative: []contracts.Review{},
	}

	result.ReviewsTotal = len(reviews)

	var ratingSum int
	for _, r := range reviews {
		ratingSum += r.ProductValuation
		if r.ProductValuation == 5 {
			result.FiveStarCount++
		}
		if r.ProductValuation <= negativeRatingMax && len(result.RecentNegative) < recentNegativeLimit {
			result.RecentNegative = append(result.RecentNegative, r)
		}
	}

	if result.ReviewsTotal > 0 {
		result.AverageRating = round2(float64(ratingSum) / float64(result.ReviewsTotal))
	}

	return result
}
