package contracts

import "fmt"

// Fault tags an aspect block that could not be computed. A block is
// either metrics (empty Error) or an error marker (non-empty Error),
// serialized in the same shape so downstream consumers make a single
// explicit check instead of probing for keys.
type Fault struct {
	Error string `json:"error,omitempty"`
}

// Failed reports whether the block is an error marker
func (f Fault) Failed() bool {
	return f.Error != ""
}

// Failf builds an error marker
func Failf(format string, args ...interface{}) Fault {
	return Fault{Error: fmt.Sprintf(format, args...)}
}

// SalesPeriod holds sales metrics for one SKU over one period
type SalesPeriod struct {
	Fault
	UnitsOrdered    int     `json:"units_ordered"`
	GrossRevenueRub float64 `json:"gross_revenue_rub"`
	NetRevenueRub   float64 `json:"net_revenue_rub"`
	DataSource      string  `json:"data_source,omitempty"`
}

// SalesResult maps period key -> sales metrics. Periods fail in
// isolation: one period's error marker never affects its sibling.
type SalesResult map[string]SalesPeriod

// CardResult is the content-quality verdict for one product card
type CardResult struct {
	Fault
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	BasePriceRub    float64  `json:"base_price_rub"`
	SalePriceRub    float64  `json:"sale_price_rub"`
	CurrentPriceRub float64  `json:"current_price_rub"`
	DiscountPercent float64  `json:"discount_percent"`
	StockQuantity   int      `json:"stock_quantity"`
	Warning         string   `json:"warning,omitempty"`
	Recommendations []string `json:"recommendations"`
}

// AdsResult lists the campaigns targeting one product
type AdsResult struct {
	Fault
	ActiveCampaignsCount int      `json:"active_campaigns_count"`
	CampaignIDs          []int64  `json:"campaign_ids"`
	CampaignNames        []string `json:"campaign_names"`
}

// AudiencePeriod holds funnel metrics for one period
type AudiencePeriod struct {
	Fault
	OpenCardCount           int     `json:"open_card_count"`
	AddToCartCount          int     `json:"add_to_cart_count"`
	OrdersCount             int     `json:"orders_count"`
	OrdersSumRub            float64 `json:"orders_sum_rub"`
	BuyoutsCount            int     `json:"buyouts_count"`
	BuyoutsSumRub           float64 `json:"buyouts_sum_rub"`
	ConversionToCartPercent float64 `json:"conversion_to_cart_percent"`
	BuyoutPercent           float64 `json:"buyout_percent"`
}

// AudienceResult maps period key -> funnel metrics
type AudienceResult map[string]AudiencePeriod

// ReviewsResult summarizes buyer reviews for one product
type ReviewsResult struct {
	Fault
	ReviewsTotal   int      `json:"reviews_total"`
	AverageRating  float64  `json:"average_rating"`
	FiveStarCount  int      `json:"five_star_count"`
	RecentNegative []Review `json:"recent_negative"`
}

// ProfitResult is the unit-economics block derived from period-1 sales
type ProfitResult struct {
	Fault
	UnitsSold        int     `json:"units_sold"`
	NetRevenueRub    float64 `json:"net_revenue_rub"`
	TotalCostRub     float64 `json:"total_cost_price_rub"`
	ProfitRub        float64 `json:"profit_rub"`
	MarginPercent    float64 `json:"profit_margin_percent"`
	CostPricePerUnit float64 `json:"cost_price_per_unit"`
	DataSource       string  `json:"data_source,omitempty"`
}

// SkuReport merges all six aspect blocks for one SKU. Assembled by the
// analysis manager; analyzers never touch it directly. Error is set
// only when the SKU could not be resolved to a product identifier, in
// which case all aspect blocks are empty.
type SkuReport struct {
	Error    string         `json:"error,omitempty"`
	Card     CardResult     `json:"card"`
	Sales    SalesResult    `json:"sales,omitempty"`
	Ads      AdsResult      `json:"ads"`
	Audience AudienceResult `json:"audience,omitempty"`
	Reviews  ReviewsResult  `json:"reviews"`
	Profit   ProfitResult   `json:"profit"`
}

// Aspect returns one aspect block by name, used by the follow-up
// question endpoint. The bool is false for unknown aspect names.
func (r *SkuReport) Aspect(name string) (interface{}, bool) {
	switch name {
	case "card":
		return r.Card, true
	case "sales":
		return r.Sales, true
	case "ads":
		return r.Ads, true
	case "audience":
		return r.Audience, true
	case "reviews":
		return r.Reviews, true
	case "profit":
		return r.Profit, true
	default:
		return nil, false
	}
}

// AnalysisReport is the terminal artifact of a run: SKU -> merged
// report. Serializable; narration and caching treat it as opaque.
type AnalysisReport map[string]*SkuReport
