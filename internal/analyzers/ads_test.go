package analyzers

import (
	"testing"

	"github.com/wonny/wbsight/internal/contracts"
)

func TestAnalyzeAdsFiltersByProduct(t *testing.T) {
	campaigns := []contracts.Campaign{
		{
			AdvertID: 100,
			Name:     "Поиск",
			Params:   []contracts.CampaignParams{{Nms: []int64{111, 222}}},
		},
		{
			AdvertID: 200,
			Name:     "Карточка",
			Params: []contracts.CampaignParams{
				{Nms: []int64{333}},
				{Nms: []int64{111}}, // second param set targets us
			},
		},
		{
			AdvertID: 300,
			Name:     "Чужая",
			Params:   []contracts.CampaignParams{{Nms: []int64{999}}},
		},
	}

	result := AnalyzeAds(111, campaigns)

	if result.ActiveCampaignsCount != 2 {
		t.Errorf("ActiveCampaignsCount = %d, want 2", result.ActiveCampaignsCount)
	}
	if len(result.CampaignIDs) != 2 || result.CampaignIDs[0] != 100 || result.CampaignIDs[1] != 200 {
		t.Errorf("CampaignIDs = %v, want [100 200]", result.CampaignIDs)
	}
	if len(result.CampaignNames) != 2 {
		t.Errorf("CampaignNames = %v, want two names", result.CampaignNames)
	}
}

func TestAnalyzeAdsNoCampaigns(t *testing.T) {
	result := AnalyzeAds(111, nil)

	if result.Failed() {
		t.Fatalf("Empty campaign list is not an error: %s", result.Error)
	}
	if result.ActiveCampaignsCount != 0 {
		t.Errorf("ActiveCampaignsCount = %d, want 0", result.ActiveCampaignsCount)
	}
	// Slices stay non-nil so they serialize as [] rather than null
	if result.CampaignIDs == nil || result.CampaignNames == nil {
		t.Error("Expected empty non-nil slices")
	}
}

func TestAnalyzeAdsUnnamedCampaign(t *testing.T) {
	campaigns := []contracts.Campaign{
		{AdvertID: 100, Params: []contracts.CampaignParams{{Nms: []int64{111}}}},
	}

	result := AnalyzeAds(111, campaigns)

	if result.ActiveCampaignsCount != 1 {
		t.Errorf("ActiveCampaignsCount = %d, want 1", result.ActiveCampaignsCount)
	}
	if len(result.CampaignNames) != 0 {
		t.Errorf("Unnamed campaign must not contribute a name, got %v", result.CampaignNames)
	}
}
