package wb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/wonny/wbsight/pkg/config"
	"github.com/wonny/wbsight/pkg/httputil"
	"github.com/wonny/wbsight/pkg/logger"
)

// Client handles communication with the Wildberries seller APIs
// ⭐ SSOT: WB API 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	cfg        config.WBConfig

	// Page/batch sizes are fields so tests can shrink them against a
	// stub server; production values come from NewClient.
	reportPageLimit int
	cardChunkSize   int
	reviewPageSize  int
}

const (
	defaultReportPageLimit = 100000
	defaultCardChunkSize   = 100
	defaultReviewPageSize  = 5000
)

// NewClient creates a new Wildberries API client. The HTTP client is
// expected to carry the bearer token and the courtesy rate limiter.
func NewClient(cfg config.WBConfig, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient:      httpClient,
		logger:          log,
		cfg:             cfg,
		reportPageLimit: defaultReportPageLimit,
		cardChunkSize:   defaultCardChunkSize,
		reviewPageSize:  defaultReviewPageSize,
	}
}

// getBody performs a GET and returns the raw body for status 200
func (c *Client) getBody(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

// postJSON performs a POST with a JSON payload and decodes the response
func (c *Client) postJSON(ctx context.Context, url string, payload interface{}, dest interface{}) error {
	resp, err := c.httpClient.PostJSON(ctx, url, payload)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
