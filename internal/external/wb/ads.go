package wb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wonny/wbsight/internal/contracts"
)

// FetchCampaigns returns the account-wide advertising campaign list.
// Ads data is decorative relative to the rest of the report, so any
// failure degrades to an empty list rather than an error.
func (c *Client) FetchCampaigns(ctx context.Context) []contracts.Campaign {
	reqURL := fmt.Sprintf("%s/adv/v1/promotion/adverts", c.cfg.AdsBaseURL)

	body, err := c.getBody(ctx, reqURL)
	if err != nil {
		c.logger.WithError(err).Warn("Campaign list fetch failed, continuing without ads data")
		return nil
	}

	var campaigns []contracts.Campaign
	if err := json.Unmarshal(body, &campaigns); err != nil {
		c.logger.WithError(err).Warn("Campaign list undecodable, continuing without ads data")
		return nil
	}

	c.logger.WithFields(map[string]interface{}{
		"campaigns": len(campaigns),
	}).Debug("Campaign list fetched")

	return campaigns
}
