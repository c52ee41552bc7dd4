package contracts

import "encoding/json"

// Raw records returned by the Wildberries seller APIs. Field tags match
// the wire names so the fetchers can decode responses directly.

// StockRecord is one row per (SKU, warehouse) from the stocks endpoint.
// Consumed immediately by catalog.Aggregate; never persisted.
type StockRecord struct {
	SupplierArticle string  `json:"supplierArticle"`
	NmID            int64   `json:"nmId"`
	Barcode         string  `json:"barcode"`
	WarehouseName   string  `json:"warehouseName"`
	Quantity        int     `json:"quantity"`
	QuantityFull    int     `json:"quantityFull"`
	InWayToClient   int     `json:"inWayToClient"`
	InWayFromClient int     `json:"inWayFromClient"`
	Category        string  `json:"category"`
	Subject         string  `json:"subject"`
	Brand           string  `json:"brand"`
	Price           float64 `json:"Price"`
	Discount        float64 `json:"Discount"`
}

// RealizationRecord is one row of the paginated sales/settlement report
// (statistics API v5). Rrdid is the server-supplied continuation cursor;
// a nil Rrdid on the last record of a page means there is no next page.
type RealizationRecord struct {
	Rrdid                  *int64  `json:"rrdid,omitempty"`
	SaName                 string  `json:"sa_name"`
	DocTypeName            string  `json:"doc_type_name"`
	Quantity               int     `json:"quantity"`
	RetailPriceWithDiscRub float64 `json:"retail_price_withdisc_rub"`
	PpvzForPay             float64 `json:"ppvz_for_pay"`
}

// Characteristic is one product attribute on a detail card
type Characteristic struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value,omitempty"`
}

// PriceInfo carries pricing of one size variant
type PriceInfo struct {
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Discount        float64 `json:"discount"`
}

// CardSize is one size variant of a detail card
type CardSize struct {
	TechSize   string      `json:"techSize,omitempty"`
	PriceInfos []PriceInfo `json:"priceInfos"`
}

// CardDetail is a detailed product card from the content API,
// keyed by the marketplace product identifier (nmID).
type CardDetail struct {
	NmID            int64             `json:"nmID"`
	Title           string            `json:"title"`
	Brand           string            `json:"brand"`
	Description     string            `json:"description"`
	SubjectID       int64             `json:"subjectID"`
	Characteristics []Characteristic  `json:"characteristics"`
	Photos          []json.RawMessage `json:"photos"`
	Videos          []json.RawMessage `json:"videos"`
	Sizes           []CardSize        `json:"sizes"`
}

// Review is one buyer review (active or archived)
type Review struct {
	ID               string `json:"id"`
	ProductValuation int    `json:"productValuation"`
	Text             string `json:"text"`
	UserName         string `json:"userName,omitempty"`
	CreatedDate      string `json:"createdDate"`
}

// CampaignParams groups the product identifiers one campaign targets
type CampaignParams struct {
	Nms []int64 `json:"nms"`
}

// Campaign is one advertising campaign from the adverts API
type Campaign struct {
	AdvertID int64            `json:"advertId"`
	Name     string           `json:"name"`
	Status   int              `json:"status"`
	Type     int              `json:"type"`
	Params   []CampaignParams `json:"params"`
}

// ProductFunnel is the per-product audience funnel for one period
type ProductFunnel struct {
	NmID             int64   `json:"nmID"`
	OpenCardCount    int     `json:"openCardCount"`
	AddToCartCount   int     `json:"addToCartCount"`
	OrdersCount      int     `json:"ordersCount"`
	OrdersSumRub     float64 `json:"ordersSumRub"`
	BuyoutsCount     int     `json:"buyoutsCount"`
	BuyoutsSumRub    float64 `json:"buyoutsSumRub"`
	ConversionToCart float64 `json:"conversionToCart"`
	BuyoutPercent    float64 `json:"buyoutPercent"`
}
