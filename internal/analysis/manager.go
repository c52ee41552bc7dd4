package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/wbsight/internal/analyzers"
	"github.com/wonny/wbsight/internal/catalog"
	"github.com/wonny/wbsight/internal/contracts"
	"github.com/wonny/wbsight/pkg/logger"
)

// DefaultCostPrice is assumed for a SKU without a supplied unit cost.
// Deliberate behavior, not a fallback bug: sellers rarely maintain
// cost prices for the whole catalog, and a rough margin beats none.
const DefaultCostPrice = 150.0

// ErrNoMatchingSKUs means the resolved SKU set was empty: none of the
// requested articles exist in the seller's catalog.
var ErrNoMatchingSKUs = errors.New("none of the requested SKUs were found in the catalog")

// Fetcher is the slice of the marketplace client the manager needs.
// Soft-failure contracts: only FetchStocks and FetchProductFunnel can
// return errors; the rest return whatever subset they could get.
type Fetcher interface {
	FetchStocks(ctx context.Context) ([]contracts.StockRecord, error)
	FetchRealizationReport(ctx context.Context, dateFrom, dateTo string) []contracts.RealizationRecord
	FetchCardDetails(ctx context.Context, nmIDs []int64) []contracts.CardDetail
	FetchReviews(ctx context.Context, nmID int64) []contracts.Review
	FetchCampaigns(ctx context.Context) []contracts.Campaign
	FetchProductFunnel(ctx context.Context, nmIDs []int64, dateFrom, dateTo string) (map[int64]contracts.ProductFunnel, error)
}

// Manager coordinates the analysis pipeline:
// fetch → aggregate → enrich → per-SKU analyzer dispatch → report.
// ⭐ SSOT: 파이프라인 조율은 여기서만
type Manager struct {
	fetcher      Fetcher
	cardAnalyzer *analyzers.CardAnalyzer
	logger       *logger.Logger
}

// Request holds validated parameters for one analysis run. AllSKUs
// selects the whole catalog; otherwise SKUs is the explicit target
// list, preserved in input order.
type Request struct {
	SKUs       []string
	AllSKUs    bool
	Period1    contracts.PeriodWindow
	Period2    contracts.PeriodWindow
	CostPrices map[string]float64
}

// RunResult is the outcome of a completed analysis run
type RunResult struct {
	RunID    string
	Report   contracts.AnalysisReport
	Duration time.Duration
}

// NewManager creates an analysis manager
func NewManager(fetcher Fetcher, cardAnalyzer *analyzers.CardAnalyzer, log *logger.Logger) *Manager {
	return &Manager{
		fetcher:      fetcher,
		cardAnalyzer: cardAnalyzer,
		logger:       log,
	}
}

// ListProducts returns the aggregated catalog sorted by SKU, for the
// read-only product listing surface.
func (m *Manager) ListProducts(ctx context.Context) ([]*contracts.Product, error) {
	stocks, err := m.fetcher.FetchStocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stocks: %w", err)
	}

	products := catalog.Aggregate(stocks)

	list := make([]*contracts.Product, 0, len(products))
	for _, p := range products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })

	return list, nil
}

// Run executes a full comparative analysis across two periods.
//
// Failure taxonomy: a stock fetch failure or an empty resolved SKU set
// fails the whole run. Everything below that degrades locally: an
// unresolvable product identifier fails only its SKU, a missing input
// fails only the affected aspect or period.
func (m *Manager) Run(ctx context.Context, req Request) (*RunResult, error) {
	startTime := time.Now()
	runID := uuid.NewString()

	log := m.logger.WithField("run_id", runID)
	log.WithFields(map[string]interface{}{
		"period_1": req.Period1.Label(),
		"period_2": req.Period2.Label(),
		"all_skus": req.AllSKUs,
		"skus":     len(req.SKUs),
	}).Info("Starting analysis run")

	// Step 1: stock → aggregated catalog (the only fatal fetch)
	stocks, err := m.fetcher.FetchStocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stocks: %w", err)
	}
	products := catalog.Aggregate(stocks)
	log.WithFields(map[string]interface{}{
		"stock_records": len(stocks),
		"products":      len(products),
	}).Info("Stock aggregated")

	// Step 2: resolve the target SKU set
	targetSKUs := resolveSKUs(req, products)
	if len(targetSKUs) == 0 {
		return nil, ErrNoMatchingSKUs
	}

	// Step 3: enrich targets with content cards
	var targetNmIDs []int64
	for _, sku := range targetSKUs {
		if id := products[sku].NmID; id != 0 {
			targetNmIDs = append(targetNmIDs, id)
		}
	}
	cards := m.fetcher.FetchCardDetails(ctx, targetNmIDs)
	catalog.Enrich(products, targetSKUs, cards)
	log.WithFields(map[string]interface{}{
		"targets": len(targetSKUs),
		"cards":   len(cards),
	}).Info("Catalog enriched")

	// Step 4: preload period-independent and per-period reports
	campaigns := m.fetcher.FetchCampaigns(ctx)

	var allNmIDs []int64
	for _, p := range products {
		if p.NmID != 0 {
			allNmIDs = append(allNmIDs, p.NmID)
		}
	}

	salesByPeriod := map[string][]contracts.RealizationRecord{
		contracts.Period1: m.fetcher.FetchRealizationReport(ctx, req.Period1.DateFrom, req.Period1.DateTo),
		contracts.Period2: m.fetcher.FetchRealizationReport(ctx, req.Period2.DateFrom, req.Period2.DateTo),
	}

	funnelByPeriod := map[string]map[int64]contracts.ProductFunnel{
		contracts.Period1: m.fetchFunnel(ctx, log, contracts.Period1, allNmIDs, req.Period1),
		contracts.Period2: m.fetchFunnel(ctx, log, contracts.Period2, allNmIDs, req.Period2),
	}

	log.Info("Report preload complete")

	// Step 5: per-SKU analyzer dispatch
	report := make(contracts.AnalysisReport, len(targetSKUs))
	for _, sku := range targetSKUs {
		product := products[sku]

		if product.NmID == 0 {
			report[sku] = &contracts.SkuReport{
				Error: "could not resolve a product identifier (nmId) for this SKU",
			}
			continue
		}

		report[sku] = m.analyzeSKU(ctx, sku, product, req, campaigns, salesByPeriod, funnelByPeriod)
	}

	result := &RunResult{
		RunID:    runID,
		Report:   report,
		Duration: time.Since(startTime),
	}

	log.WithFields(map[string]interface{}{
		"skus":     len(report),
		"duration": result.Duration.Seconds(),
	}).Info("Analysis run completed")

	return result, nil
}

// analyzeSKU invokes all six analyzers for one resolved SKU
func (m *Manager) analyzeSKU(
	ctx context.Context,
	sku string,
	product *contracts.Product,
	req Request,
	campaigns []contracts.Campaign,
	salesByPeriod map[string][]contracts.RealizationRecord,
	funnelByPeriod map[string]map[int64]contracts.ProductFunnel,
) *contracts.SkuReport {
	skuReport := &contracts.SkuReport{}

	skuReport.Card = m.cardAnalyzer.Analyze(ctx, product)
	skuReport.Sales = analyzers.AnalyzeSales(sku, salesByPeriod)
	skuReport.Ads = analyzers.AnalyzeAds(product.NmID, campaigns)
	skuReport.Audience = analyzers.AnalyzeAudience(funnelForProduct(product.NmID, funnelByPeriod))
	skuReport.Reviews = analyzers.AnalyzeReviews(m.fetcher.FetchReviews(ctx, product.NmID))

	costPrice, ok := req.CostPrices[sku]
	if !ok {
		costPrice = DefaultCostPrice
	}
	skuReport.Profit = analyzers.AnalyzeProfit(skuReport.Sales[contracts.Period1], costPrice)

	return skuReport
}

// fetchFunnel wraps the per-period analytics fetch: a failure is fatal
// to this period only, surfaced as a nil map (every product then gets
// a per-period error marker).
func (m *Manager) fetchFunnel(ctx context.Context, log *logger.Logger, periodName string, nmIDs []int64, window contracts.PeriodWindow) map[int64]contracts.ProductFunnel {
	funnel, err := m.fetcher.FetchProductFunnel(ctx, nmIDs, window.DateFrom, window.DateTo)
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"period": periodName,
		}).Warn("Funnel analytics unavailable for period")
		return nil
	}
	return funnel
}

// funnelForProduct projects the per-period funnel maps onto one
// product: nil entries mean "no data for this period".
func funnelForProduct(nmID int64, funnelByPeriod map[string]map[int64]contracts.ProductFunnel) map[string]*contracts.ProductFunnel {
	out := make(map[string]*contracts.ProductFunnel, len(funnelByPeriod))
	for periodName, byNmID := range funnelByPeriod {
		if funnel, ok := byNmID[nmID]; ok {
			f := funnel
			out[periodName] = &f
		} else {
			out[periodName] = nil
		}
	}
	return out
}

// resolveSKUs narrows the request to SKUs that actually exist in the
// aggregated catalog. "All" selects the whole key set, sorted for
// deterministic dispatch order; an explicit list keeps input order.
func resolveSKUs(req Request, products map[string]*contracts.Product) []string {
	if req.AllSKUs {
		skus := make([]string, 0, len(products))
		for sku := range products {
			skus = append(skus, sku)
		}
		sort.Strings(skus)
		return skus
	}

	var skus []string
	for _, sku := range req.SKUs {
		if _, ok := products[sku]; ok {
			skus = append(skus, sku)
		}
	}
	return skus
}
