package contracts

// Product is one catalog entry keyed by SKU: stock quantities summed
// across warehouses, later overlaid with content-card details. Built
// fresh per analysis run, never persisted.
type Product struct {
	// Base fields from the first-seen stock record
	SKU             string `json:"supplierArticle"`
	NmID            int64  `json:"nmId"`
	Barcode         string `json:"barcode,omitempty"`
	Category        string `json:"category,omitempty"`
	Subject         string `json:"subject,omitempty"`
	Brand           string `json:"brand,omitempty"`
	Quantity        int    `json:"quantity"`
	QuantityFull    int    `json:"quantityFull"`
	InWayToClient   int    `json:"inWayToClient"`
	InWayFromClient int    `json:"inWayFromClient"`

	// Enrichment from the content card (zero values when no card found)
	Name            string           `json:"name,omitempty"`
	Description     string           `json:"description,omitempty"`
	Characteristics []Characteristic `json:"characteristics,omitempty"`
	PhotosCount     int              `json:"photos_count"`
	VideosCount     int              `json:"videos_count"`
	SubjectID       int64            `json:"subjectID,omitempty"`
	BasePriceRub    float64          `json:"base_price_rub"`
	DiscountPercent float64          `json:"discount_percent"`
	SalePriceRub    float64          `json:"sale_price_rub"`

	// Warning set when no detail card matched the nmID. Enrichment
	// never fails the run; analyzers fall back to base fields.
	Warning string `json:"warning,omitempty"`
}

// Enriched reports whether the content card overlay happened
func (p *Product) Enriched() bool {
	return p.Warning == "" && p.Name != ""
}

// DisplayName picks the first usable name for the product.
// "NO_NAME" marks a card with no identifying text at all, which
// usually means a listing created in the legacy seller cabinet.
func (p *Product) DisplayName() string {
	switch {
	case p.Name != "":
		return p.Name
	case p.SKU != "":
		return p.SKU
	default:
		return "NO_NAME"
	}
}
