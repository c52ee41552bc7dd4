package wb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/wonny/wbsight/internal/contracts"
)

// feedbacksResponse is the feedbacks API envelope
type feedbacksResponse struct {
	Data struct {
		Feedbacks []contracts.Review `json:"feedbacks"`
	} `json:"data"`
	Error     bool   `json:"error"`
	ErrorText string `json:"errorText"`
}

// FetchReviews returns active and archived reviews for one product.
// The two queries hit separate endpoints and fail independently; the
// union of whatever succeeded is returned.
func (c *Client) FetchReviews(ctx context.Context, nmID int64) []contracts.Review {
	var all []contracts.Review

	active := c.fetchFeedbacks(ctx, "/api/v1/feedbacks", nmID, url.Values{"order": {"dateDesc"}})
	all = append(all, active...)

	archived := c.fetchFeedbacks(ctx, "/api/v1/feedbacks/archive", nmID, nil)
	all = append(all, archived...)

	c.logger.WithFields(map[string]interface{}{
		"nm_id":    nmID,
		"active":   len(active),
		"archived": len(archived),
	}).Debug("Reviews fetched")

	return all
}

func (c *Client) fetchFeedbacks(ctx context.Context, path string, nmID int64, extra url.Values) []contracts.Review {
	params := url.Values{}
	params.Set("nmId", strconv.FormatInt(nmID, 10))
	params.Set("take", strconv.Itoa(c.reviewPageSize))
	params.Set("skip", "0")
	for k, vs := range extra {
		for _, v := range vs {
			params.Set(k, v)
		}
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.cfg.FeedbacksBaseURL, path, params.Encode())

	body, err := c.getBody(ctx, reqURL)
	if err != nil {
		c.logger.WithError(err).WithFields(map[string]interface{}{
			"nm_id": nmID,
			"path":  path,
		}).Error("Feedbacks query failed, skipping")
		return nil
	}

	var resp feedbacksResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.WithError(err).Warn("Feedbacks response undecodable, skipping")
		return nil
	}

	if resp.Error {
		c.logger.WithFields(map[string]interface{}{
			"error_text": resp.ErrorText,
			"path":       path,
		}).Warn("Feedbacks API returned error, skipping")
		return nil
	}

	return resp.Data.Feedbacks
}
