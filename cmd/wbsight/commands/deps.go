package commands

import (
	"golang.org/x/time/rate"

	"github.com/wonny/wbsight/internal/analysis"
	"github.com/wonny/wbsight/internal/analyzers"
	"github.com/wonny/wbsight/internal/external/wb"
	"github.com/wonny/wbsight/pkg/config"
	"github.com/wonny/wbsight/pkg/httputil"
	"github.com/wonny/wbsight/pkg/logger"
)

// buildManager wires the marketplace client and the analysis manager.
// Shared by every command that talks to the seller APIs.
func buildManager(cfg *config.Config, log *logger.Logger) *analysis.Manager {
	// 50 req/min ≈ one request per 1.2s against the statistics API
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.WB.RequestsPerMinute)/60.0), 1)

	httpClient := httputil.New(cfg, log).
		WithBearerToken(cfg.WB.APIKey).
		WithLimiter(limiter)

	wbClient := wb.NewClient(cfg.WB, httpClient, log)
	charcs := wb.NewCharcsCache(wbClient, log)
	cardAnalyzer := analyzers.NewCardAnalyzer(charcs)

	return analysis.NewManager(wbClient, cardAnalyzer, log)
}
