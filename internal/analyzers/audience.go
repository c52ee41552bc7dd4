package analyzers

import (
	"github.com/wonny/wbsight/internal/contracts"
)

// AnalyzeAudience extracts per-period funnel metrics for one product.
// A nil entry means the period's analytics were unavailable (fetch
// failed or the product had no traffic) and yields an error marker for
// that period only.
func AnalyzeAudience(funnelByPeriod map[string]*contracts.ProductFunnel) contracts.AudienceResult {
	result := make(contracts.AudienceResult, len(funnelByPeriod))

	for periodName, funnel := range funnelByPeriod {
		if funnel == nil {
			result[periodName] = contracts.AudiencePeriod{
				Fault: contracts.Failf("no funnel statistics for %s", periodName),
			}
			continue
		}

		result[periodName] = contracts.AudiencePeriod{
			OpenCardCount:           funnel.OpenCardCount,
			AddToCartCount:          funnel.AddToCartCount,
			OrdersCount:             funnel.OrdersCount,
			OrdersSumRub:            funnel.OrdersSumRub,
			BuyoutsCount:            funnel.BuyoutsCount,
			BuyoutsSumRub:           funnel.BuyoutsSumRub,
			ConversionToCartPercent: funnel.ConversionToCart,
			BuyoutPercent:           funnel.BuyoutPercent,
		}
	}

	return result
}
