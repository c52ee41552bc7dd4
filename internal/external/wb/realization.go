package wb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/wonny/wbsight/internal/contracts"
)

// realizationErrors is the error payload the statistics API returns in
// place of a record page
type realizationErrors struct {
	Errors []string `json:"errors"`
}

// FetchRealizationReport pages through the sales/settlement report for
// an inclusive date range using the server-supplied rrdid cursor.
//
// Termination: a null or empty page, an error payload, a short page, or
// a last record without a cursor all mean "no more data". A transport
// failure mid-way aborts pagination but keeps what was already fetched:
// callers always receive a slice, possibly incomplete, never an error.
// Pacing between pages is handled by the HTTP client's limiter.
func (c *Client) FetchRealizationReport(ctx context.Context, dateFrom, dateTo string) []contracts.RealizationRecord {
	var all []contracts.RealizationRecord
	var cursor int64

	for {
		params := url.Values{}
		params.Set("dateFrom", dateFrom)
		params.Set("dateTo", dateTo)
		params.Set("limit", strconv.Itoa(c.reportPageLimit))
		params.Set("rrdid", strconv.FormatInt(cursor, 10))

		reqURL := fmt.Sprintf("%s/api/v5/supplier/reportDetailByPeriod?%s", c.cfg.StatisticsBaseURL, params.Encode())

		body, err := c.getBody(ctx, reqURL)
		if err != nil {
			c.logger.WithError(err).WithFields(map[string]interface{}{
				"rrdid":       cursor,
				"accumulated": len(all),
			}).Error("Realization report page failed, returning partial report")
			return all
		}

		body = bytes.TrimSpace(body)
		if len(body) == 0 || bytes.Equal(body, []byte("null")) {
			c.logger.Debug("Realization report: null page, all data loaded")
			return all
		}

		var page []contracts.RealizationRecord
		if err := json.Unmarshal(body, &page); err != nil {
			// Not a record page: the API signals failures as an
			// object with an errors list
			var apiErr realizationErrors
			if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && len(apiErr.Errors) > 0 {
				c.logger.WithFields(map[string]interface{}{
					"errors": apiErr.Errors,
				}).Warn("Realization report: API returned errors, stopping pagination")
				return all
			}
			c.logger.WithError(err).Warn("Realization report: undecodable page, stopping pagination")
			return all
		}

		if len(page) == 0 {
			c.logger.Debug("Realization report: empty page, all data loaded")
			return all
		}

		all = append(all, page...)

		c.logger.WithFields(map[string]interface{}{
			"page_records": len(page),
			"total":        len(all),
		}).Debug("Realization report page fetched")

		// Last-page signals: short page, or no cursor on the final record
		last := page[len(page)-1]
		if len(page) < c.reportPageLimit || last.Rrdid == nil {
			c.logger.WithFields(map[string]interface{}{
				"total": len(all),
			}).Info("Realization report complete")
			return all
		}

		cursor = *last.Rrdid
	}
}
