package catalog

import (
	"fmt"

	"github.com/wonny/wbsight/internal/contracts"
)

// Enrich overlays content-card details onto aggregated products for
// the given SKUs. Cards are matched by nmID. A product without a
// matching card gets a warning annotation and keeps its base fields;
// malformed nested structures degrade to zero values. Enrichment never
// fails the run.
func Enrich(products map[string]*contracts.Product, skus []string, cards []contracts.CardDetail) {
	cardsByNmID := make(map[int64]contracts.CardDetail, len(cards))
	for _, card := range cards {
		cardsByNmID[card.NmID] = card
	}

	for _, sku := range skus {
		p, ok := products[sku]
		if !ok {
			continue
		}

		card, ok := cardsByNmID[p.NmID]
		if !ok {
			p.Warning = fmt.Sprintf("no detail card found in content API for nmId %d", p.NmID)
			continue
		}

		price := firstPriceInfo(card)

		p.Name = card.Title
		if card.Brand != "" {
			p.Brand = card.Brand
		}
		p.Description = card.Description
		p.Characteristics = card.Characteristics
		p.PhotosCount = len(card.Photos)
		p.VideosCount = len(card.Videos)
		p.SubjectID = card.SubjectID
		p.BasePriceRub = price.Price
		p.DiscountPercent = price.Discount
		p.SalePriceRub = price.Price * (1 - price.Discount/100)
	}
}

// firstPriceInfo digs out the first price entry of the first size
// variant; absent levels yield zero values.
func firstPriceInfo(card contracts.CardDetail) contracts.PriceInfo {
	if len(card.Sizes) == 0 {
		return contracts.PriceInfo{}
	}
	if len(card.Sizes[0].PriceInfos) == 0 {
		return contracts.PriceInfo{}
	}
	return card.Sizes[0].PriceInfos[0]
}
