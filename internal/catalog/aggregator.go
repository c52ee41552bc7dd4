package catalog

import (
	"github.com/wonny/wbsight/internal/contracts"
)

// Aggregate reduces per-warehouse stock records into one product per
// SKU. The first record seen for a SKU donates every base field; the
// quantity fields start at zero and accumulate across all records of
// the group in input order. Records without a SKU are skipped.
func Aggregate(records []contracts.StockRecord) map[string]*contracts.Product {
	products := make(map[string]*contracts.Product)

	for _, rec := range records {
		if rec.SupplierArticle == "" {
			continue
		}

		p, ok := products[rec.SupplierArticle]
		if !ok {
			p = &contracts.Product{
				SKU:             rec.SupplierArticle,
				NmID:            rec.NmID,
				Barcode:         rec.Barcode,
				Category:        rec.Category,
				Subject:         rec.Subject,
				Brand:           rec.Brand,
				BasePriceRub:    rec.Price,
				DiscountPercent: rec.Discount,
			}
			products[rec.SupplierArticle] = p
		}

		p.Quantity += rec.Quantity
		p.QuantityFull += rec.QuantityFull
		p.InWayToClient += rec.InWayToClient
		p.InWayFromClient += rec.InWayFromClient
	}

	return products
}
