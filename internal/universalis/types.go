package universalis

// Types mirror the relevant slice of the Universalis v2 aggregated endpoint:
// each item carries NQ and HQ variants, and each statistic nests a data-center
// scoped value under "dc". Prices and quantities are pointers because the API
// omits or nulls them when a variant has no listings.

// ListingRef is a minimum-price listing scoped to the data center.
type ListingRef struct {
	Price   *float64 `json:"price"`
	WorldID *int64   `json:"worldId"`
}

type MinListing struct {
	DC *ListingRef `json:"dc"`
}

type PriceRef struct {
	Price *float64 `json:"price"`
}

type AverageSalePrice struct {
	DC *PriceRef `json:"dc"`
}

type QuantityRef struct {
	Quantity *float64 `json:"quantity"`
}

type DailySaleVelocity struct {
	DC *QuantityRef `json:"dc"`
}

// QualityData is the market snapshot for one quality variant (NQ or HQ).
type QualityData struct {
	MinListing        *MinListing        `json:"minListing"`
	AverageSalePrice  *AverageSalePrice  `json:"averageSalePrice"`
	DailySaleVelocity *DailySaleVelocity `json:"dailySaleVelocity"`
}

// MinListingDC returns the data-center minimum listing, or nil when any level
// of the nesting is absent.
func (q QualityData) MinListingDC() *ListingRef {
	if q.MinListing == nil {
		return nil
	}
	return q.MinListing.DC
}

// AveragePriceDC returns the data-center average sale price, or nil.
func (q QualityData) AveragePriceDC() *float64 {
	if q.AverageSalePrice == nil || q.AverageSalePrice.DC == nil {
		return nil
	}
	return q.AverageSalePrice.DC.Price
}

// SaleVelocityDC returns the data-center daily sale velocity, or nil.
func (q QualityData) SaleVelocityDC() *float64 {
	if q.DailySaleVelocity == nil || q.DailySaleVelocity.DC == nil {
		return nil
	}
	return q.DailySaleVelocity.DC.Quantity
}

type ItemEntry struct {
	ItemID int64       `json:"itemId"`
	NQ     QualityData `json:"nq"`
	HQ     QualityData `json:"hq"`
}

type AggregatedResponse struct {
	Results     []ItemEntry `json:"results"`
	FailedItems []int64     `json:"failedItems"`
}
