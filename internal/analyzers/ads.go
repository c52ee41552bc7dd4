package analyzers

import (
	"github.com/wonny/wbsight/internal/contracts"
)

// AnalyzeAds filters the account-wide campaign list down to campaigns
// targeting the given product identifier. One matching parameter set
// is enough to include a campaign.
func AnalyzeAds(nmID int64, campaigns []contracts.Campaign) contracts.AdsResult {
	result := contracts.AdsResult{
		CampaignIDs:   []int64{},
		CampaignNames: []string{},
	}

	for _, campaign := range campaigns {
		if !campaignTargets(campaign, nmID) {
			continue
		}

		result.ActiveCampaignsCount++
		result.CampaignIDs = append(result.CampaignIDs, campaign.AdvertID)
		if campaign.Name != "" {
			result.CampaignNames = append(result.CampaignNames, campaign.Name)
		}
	}

	return result
}

func campaignTargets(campaign contracts.Campaign, nmID int64) bool {
	for _, params := range campaign.Params {
		for _, nm := range params.Nms {
			if nm == nmID {
				return true
			}
		}
	}
	return false
}
