package analyzers

import (
	"testing"

	"github.com/wonny/wbsight/internal/contracts"
)

func TestAnalyzeProfitDerivesUnitEconomics(t *testing.T) {
	sales := contracts.SalesPeriod{
		UnitsOrdered:    2,
		GrossRevenueRub: 1600,
		NetRevenueRub:   1400,
	}

	result := AnalyzeProfit(sales, 150)

	if result.Failed() {
		t.Fatalf("Unexpected error marker: %s", result.Error)
	}
	if result.UnitsSold != 2 {
		t.Errorf("UnitsSold = %d, want 2", result.UnitsSold)
	}
	if result.TotalCostRub != 300 {
		t.Errorf("TotalCostRub = %v, want 300", result.TotalCostRub)
	}
	if result.ProfitRub != 1100 {
		t.Errorf("ProfitRub = %v, want 1100", result.ProfitRub)
	}
	if result.MarginPercent != 78.57 {
		t.Errorf("MarginPercent = %v, want 78.57", result.MarginPercent)
	}
	if result.CostPricePerUnit != 150 {
		t.Errorf("CostPricePerUnit = %v, want 150", result.CostPricePerUnit)
	}
	if result.DataSource != ProfitDataSource {
		t.Errorf("DataSource = %q, want %q", result.DataSource, ProfitDataSource)
	}
}

func TestAnalyzeProfitZeroRevenue(t *testing.T) {
	sales := contracts.SalesPeriod{UnitsOrdered: 0, NetRevenueRub: 0}

	result := AnalyzeProfit(sales, 150)

	if result.Failed() {
		t.Fatalf("Zero revenue is not an error: %s", result.Error)
	}
	if result.MarginPercent != 0 {
		t.Errorf("MarginPercent = %v, want 0 (no division by zero)", result.MarginPercent)
	}
	if result.ProfitRub != 0 {
		t.Errorf("ProfitRub = %v, want 0", result.ProfitRub)
	}
}

func TestAnalyzeProfitNegativeMargin(t *testing.T) {
	sales := contracts.SalesPeriod{UnitsOrdered: 10, NetRevenueRub: 1000}

	result := AnalyzeProfit(sales, 150)

	if result.TotalCostRub != 1500 {
		t.Errorf("TotalCostRub = %v, want 1500", result.TotalCostRub)
	}
	if result.ProfitRub != -500 {
		t.Errorf("ProfitRub = %v, want -500", result.ProfitRub)
	}
	if result.MarginPercent != -50 {
		t.Errorf("MarginPercent = %v, want -50", result.MarginPercent)
	}
}

func TestAnalyzeProfitFromFailedSales(t *testing.T) {
	sales := contracts.SalesPeriod{
		Fault: contracts.Failf("realization report for period_1 is empty"),
	}

	result := AnalyzeProfit(sales, 150)

	if !result.Failed() {
		t.Error("Profit from failed sales input must carry an error marker")
	}
}
