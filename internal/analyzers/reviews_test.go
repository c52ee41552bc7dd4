package analyzers

import (
	"testing"

	"github.com/wonny/wbsight/internal/contracts"
)

func TestAnalyzeReviewsSummary(t *testing.T) {
	reviews := []contracts.Review{
		{ID: "r1", ProductValuation: 5},
		{ID: "r2", ProductValuation: 4},
		{ID: "r3", ProductValuation: 2, Text: "Сломалась через неделю"},
		{ID: "r4", ProductValuation: 5},
		{ID: "r5", ProductValuation: 1, Text: "Не соответствует описанию"},
	}

	result := AnalyzeReviews(reviews)

	if result.ReviewsTotal != 5 {
		t.Errorf("ReviewsTotal = %d, want 5", result.ReviewsTotal)
	}
	if result.AverageRating != 3.4 {
		t.Errorf("AverageRating = %v, want 3.4", result.AverageRating)
	}
	if result.FiveStarCount != 2 {
		t.Errorf("FiveStarCount = %d, want 2", result.FiveStarCount)
	}
	if len(result.RecentNegative) != 2 {
		t.Fatalf("RecentNegative count = %d, want 2", len(result.RecentNegative))
	}
	// Input order preserved (API returns newest first)
	if result.RecentNegative[0].ID != "r3" || result.RecentNegative[1].ID != "r5" {
		t.Errorf("RecentNegative order wrong: %v", result.RecentNegative)
	}
}

func TestAnalyzeReviewsNegativeLimit(t *testing.T) {
	var reviews []contracts.Review
	for i := 0; i < 10; i++ {
		reviews = append(reviews, contracts.Review{ProductValuation: 1})
	}

	result := AnalyzeReviews(reviews)

	if len(result.RecentNegative) != 3 {
		t.Errorf("RecentNegative count = %d, want cap of 3", len(result.RecentNegative))
	}
}

func TestAnalyzeReviewsEmpty(t *testing.T) {
	result := AnalyzeReviews(nil)

	if result.Failed() {
		t.Fatalf("No reviews is not an error: %s", result.Error)
	}
	if result.ReviewsTotal != 0 {
		t.Errorf("ReviewsTotal = %d, want 0", result.ReviewsTotal)
	}
	if result.AverageRating != 0 {
		t.Errorf("AverageRating = %v, want 0 without division", result.AverageRating)
	}
	if result.RecentNegative == nil {
		t.Error("RecentNegative should serialize as [], not null")
	}
}

func TestAnalyzeReviewsRatingRounded(t *testing.T) {
	reviews := []contracts.Review{
		{ProductValuation: 5},
		{ProductValuation: 5},
		{ProductValuation: 4},
	}

	result := AnalyzeReviews(reviews)

	// 14/3 = 4.666... → 4.67
	if result.AverageRating != 4.67 {
		t.Errorf("AverageRating = %v, want 4.67", result.AverageRating)
	}
}
