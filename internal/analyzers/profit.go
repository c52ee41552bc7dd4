package analyzers

import (
	"github.com/wonny/wbsight/internal/contracts"
)

// ProfitDataSource labels the revenue basis of the profit block
const ProfitDataSource = "realization_report_net_revenue"

// AnalyzeProfit derives unit economics from one period's sales metrics
// and an externally supplied unit cost. Margin is 0 when net revenue
// is 0 — no data is not a division error.
func AnalyzeProfit(sales contracts.SalesPeriod, costPrice float64) contracts.ProfitResult {
	if sales.Failed() {
		return contracts.ProfitResult{
			Fault: contracts.Failf("no sales metrics to derive profit from: %s", sales.Error),
		}
	}

	unitsSold := sales.UnitsOrdered
	netRevenue := sales.NetRevenueRub

	totalCost := float64(unitsSold) * costPrice
	profit := netRevenue - totalCost

	var margin float64
	if netRevenue != 0 {
		margin = profit / netRevenue * 100
	}

	return contracts.ProfitResult{
		UnitsSold:        unitsSold,
		NetRevenueRub:    netRevenue,
		TotalCostRub:     round2(totalCost),
		ProfitRub:        round2(profit),
		MarginPercent:    round2(margin),
		CostPricePerUnit: costPrice,
		DataSource:       ProfitDataSource,
	}
}
