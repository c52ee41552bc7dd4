package analyzers

import (
	"testing"

	"github.com/wonny/wbsight/internal/contracts"
)

func TestAnalyzeAudienceExtractsFunnel(t *testing.T) {
	funnel := &contracts.ProductFunnel{
		OpenCardCount:    1000,
		AddToCartCount:   120,
		OrdersCount:      40,
		OrdersSumRub:     32000,
		BuyoutsCount:     35,
		BuyoutsSumRub:    28000,
		ConversionToCart: 12,
		BuyoutPercent:    87.5,
	}

	result := AnalyzeAudience(map[string]*contracts.ProductFunnel{
		contracts.Period1: funnel,
	})

	p1 := result[contracts.Period1]
	if p1.Failed() {
		t.Fatalf("Unexpected error marker: %s", p1.Error)
	}
	if p1.OpenCardCount != 1000 || p1.AddToCartCount != 120 {
		t.Errorf("Traffic counters wrong: %+v", p1)
	}
	if p1.ConversionToCartPercent != 12 || p1.BuyoutPercent != 87.5 {
		t.Errorf("Conversion fields wrong: %+v", p1)
	}
}

func TestAnalyzeAudiencePeriodsFailInIsolation(t *testing.T) {
	result := AnalyzeAudience(map[string]*contracts.ProductFunnel{
		contracts.Period1: {OpenCardCount: 10},
		contracts.Period2: nil, // analytics fetch failed for this period
	})

	if result[contracts.Period1].Failed() {
		t.Errorf("period_1 should succeed, got %q", result[contracts.Period1].Error)
	}
	if !result[contracts.Period2].Failed() {
		t.Error("period_2 without funnel data must carry an error marker")
	}
}
