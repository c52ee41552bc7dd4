package wb

import (
	"context"
	"fmt"

	"github.com/wonny/wbsight/internal/contracts"
)

// cardsListResponse is the content API envelope for a card batch
type cardsListResponse struct {
	Cards     []contracts.CardDetail `json:"cards"`
	Error     bool                   `json:"error"`
	ErrorText string                 `json:"errorText"`
}

type cardsListRequest struct {
	Settings cardsListSettings `json:"settings"`
}

type cardsListSettings struct {
	Filter cardsListFilter `json:"filter"`
}

type cardsListFilter struct {
	NmIDs                 []int64 `json:"nmIDs"`
	AllowedCategoriesOnly bool    `json:"allowedCategoriesOnly"`
}

// FetchCardDetails looks up detail cards for the given product
// identifiers in fixed-size batches. A failing batch (transport or
// API-level error) is skipped, not fatal: successes from the other
// batches are still returned.
func (c *Client) FetchCardDetails(ctx context.Context, nmIDs []int64) []contracts.CardDetail {
	var all []contracts.CardDetail

	reqURL := fmt.Sprintf("%s/content/v2/get/cards/list", c.cfg.ContentBaseURL)

	for start := 0; start < len(nmIDs); start += c.cardChunkSize {
		end := start + c.cardChunkSize
		if end > len(nmIDs) {
			end = len(nmIDs)
		}
		chunk := nmIDs[start:end]

		payload := cardsListRequest{
			Settings: cardsListSettings{
				Filter: cardsListFilter{
					NmIDs:                 chunk,
					AllowedCategoriesOnly: false,
				},
			},
		}

		var resp cardsListResponse
		if err := c.postJSON(ctx, reqURL, payload, &resp); err != nil {
			c.logger.WithError(err).WithFields(map[string]interface{}{
				"chunk_start": start,
				"chunk_size":  len(chunk),
			}).Error("Card details batch failed, skipping")
			continue
		}

		if resp.Error {
			c.logger.WithFields(map[string]interface{}{
				"error_text": resp.ErrorText,
			}).Warn("Content API rejected card batch, skipping")
			continue
		}

		all = append(all, resp.Cards...)
	}

	c.logger.WithFields(map[string]interface{}{
		"requested": len(nmIDs),
		"fetched":   len(all),
	}).Info("Card details fetched")

	return all
}
