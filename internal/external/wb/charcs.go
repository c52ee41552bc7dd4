package wb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/wonny/wbsight/pkg/logger"
)

type charcEntry struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// FetchRequiredCharacteristics returns the names of the attributes the
// marketplace requires for one category (subject) of products.
func (c *Client) FetchRequiredCharacteristics(ctx context.Context, subjectID int64) (map[string]bool, error) {
	reqURL := fmt.Sprintf("%s/public/api/v1/object/charcs/%d", c.cfg.SuppliersBaseURL, subjectID)

	body, err := c.getBody(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("fetch required characteristics: %w", err)
	}

	var entries []charcEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("fetch required characteristics: decode: %w", err)
	}

	required := make(map[string]bool)
	for _, e := range entries {
		if e.Required {
			required[e.Name] = true
		}
	}

	return required, nil
}

// charcsSource is the slice of the client the cache needs
type charcsSource interface {
	FetchRequiredCharacteristics(ctx context.Context, subjectID int64) (map[string]bool, error)
}

// CharcsCache memoizes required-characteristics sets per category for
// the process lifetime. Entries are never invalidated: the required
// set changes on marketplace release cadence, not per request. A
// lookup failure is cached as an empty set for the current call only,
// so a transient API error does not poison the cache.
type CharcsCache struct {
	source charcsSource
	logger *logger.Logger

	mu      sync.RWMutex
	entries map[int64]map[string]bool
}

// NewCharcsCache creates a characteristics cache backed by the client
func NewCharcsCache(source charcsSource, log *logger.Logger) *CharcsCache {
	return &CharcsCache{
		source:  source,
		logger:  log,
		entries: make(map[int64]map[string]bool),
	}
}

// Required returns the required attribute names for a category,
// fetching and memoizing on first use. Never returns an error: a
// failed lookup yields an empty set, which downgrades the card check
// rather than failing the analyzer.
func (c *CharcsCache) Required(ctx context.Context, subjectID int64) map[string]bool {
	if subjectID == 0 {
		return nil
	}

	c.mu.RLock()
	cached, ok := c.entries[subjectID]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	required, err := c.source.FetchRequiredCharacteristics(ctx, subjectID)
	if err != nil {
		c.logger.WithError(err).WithFields(map[string]interface{}{
			"subject_id": subjectID,
		}).Warn("Required characteristics lookup failed")
		return nil
	}

	c.mu.Lock()
	c.entries[subjectID] = required
	c.mu.Unlock()

	return required
}
