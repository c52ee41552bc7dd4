package wb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/wonny/wbsight/internal/contracts"
)

// stocksDateFrom asks for the full stock history; the endpoint treats
// dateFrom as "changed since", so a date far in the past returns
// everything currently on any warehouse.
const stocksDateFrom = "2020-01-01T00:00:00"

// FetchStocks returns one record per (SKU, warehouse) with current
// quantities. This is the only fetch whose failure is fatal to an
// analysis run: without stock there is no catalog to analyze.
func (c *Client) FetchStocks(ctx context.Context) ([]contracts.StockRecord, error) {
	params := url.Values{}
	params.Set("dateFrom", stocksDateFrom)

	reqURL := fmt.Sprintf("%s/api/v1/supplier/stocks?%s", c.cfg.StatisticsBaseURL, params.Encode())

	body, err := c.getBody(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("fetch stocks: %w", err)
	}

	var records []contracts.StockRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("fetch stocks: decode: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"records": len(records),
	}).Info("Stock records fetched")

	return records, nil
}
