package wb

import (
	"context"
	"fmt"

	"github.com/wonny/wbsight/internal/contracts"
)

type funnelRequest struct {
	NmIDs  []int64      `json:"nmIDs"`
	Period funnelPeriod `json:"period"`
	Page   int          `json:"page"`
}

type funnelPeriod struct {
	Begin string `json:"begin"`
	End   string `json:"end"`
}

type funnelResponse struct {
	Data struct {
		Cards []contracts.ProductFunnel `json:"cards"`
	} `json:"data"`
	Error     bool   `json:"error"`
	ErrorText string `json:"errorText"`
}

// FetchProductFunnel returns audience funnel statistics per product for
// one period, keyed by nmID. An error here is fatal only to the period
// it was fetched for; the manager turns it into per-period markers.
func (c *Client) FetchProductFunnel(ctx context.Context, nmIDs []int64, dateFrom, dateTo string) (map[int64]contracts.ProductFunnel, error) {
	reqURL := fmt.Sprintf("%s/api/v5/supplier/reportDetailByPeriod", c.cfg.StatisticsBaseURL)

	payload := funnelRequest{
		NmIDs:  nmIDs,
		Period: funnelPeriod{Begin: dateFrom, End: dateTo},
		Page:   1,
	}

	var resp funnelResponse
	if err := c.postJSON(ctx, reqURL, payload, &resp); err != nil {
		return nil, fmt.Errorf("fetch product funnel: %w", err)
	}

	if resp.Error {
		return nil, fmt.Errorf("fetch product funnel: API error: %s", resp.ErrorText)
	}

	funnel := make(map[int64]contracts.ProductFunnel, len(resp.Data.Cards))
	for _, card := range resp.Data.Cards {
		funnel[card.NmID] = card
	}

	c.logger.WithFields(map[string]interface{}{
		"requested": len(nmIDs),
		"returned":  len(funnel),
	}).Debug("Product funnel fetched")

	return funnel, nil
}
