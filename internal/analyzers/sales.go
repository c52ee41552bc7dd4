package analyzers

import (
	"math"
	"strings"

	"github.com/wonny/wbsight/internal/contracts"
)

// SalesDataSource labels where sales metrics come from, so report
// consumers can tell settlement figures from order statistics.
const SalesDataSource = "wb_realization_report_api_v5"

// docTypeSale marks a completed sale row in the realization report
// (other doc types are returns, corrections, logistics lines).
const docTypeSale = "Продажа"

// AnalyzeSales sums completed sales for one SKU per period. Article
// matching is whitespace- and case-insensitive. Zero-quantity rows are
// skipped. An empty report for a period yields an error marker for
// that period only.
func AnalyzeSales(sku string, reports map[string][]contracts.RealizationRecord) contracts.SalesResult {
	result := make(contracts.SalesResult, len(reports))
	wantSKU := normalizeArticle(sku)

	for periodName, report := range reports {
		if len(report) == 0 {
			result[periodName] = contracts.SalesPeriod{
				Fault: contracts.Failf("realization report for %s is empty", periodName),
			}
			continue
		}

		var units int
		var gross, net float64

		for _, row := range report {
			if row.SaName == "" || normalizeArticle(row.SaName) != wantSKU {
				continue
			}
			if row.DocTypeName != docTypeSale {
				continue
			}
			if row.Quantity == 0 {
				continue
			}

			units += row.Quantity
			gross += row.RetailPriceWithDiscRub
			net += row.PpvzForPay
		}

		result[periodName] = contracts.SalesPeriod{
			UnitsOrdered:    units,
			GrossRevenueRub: round2(gross),
			NetRevenueRub:   round2(net),
			DataSource:      SalesDataSource,
		}
	}

	return result
}

func normalizeArticle(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
