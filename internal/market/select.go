package market

import (
	"strconv"

	"xiv_market_sheets/internal/universalis"
)

// WorldDirectory maps world ids (as strings) to display names, read from a
// fixed range of the output sheet.
type WorldDirectory map[string]string

// Data is the display-ready market data for one item.
type Data struct {
	PriceLabel   string
	WorldName    string
	AveragePrice *float64
	SaleVelocity *float64
}

// SelectBestListing picks one listing for an item and derives its display
// fields. The NQ minimum listing is the default candidate; an HQ minimum
// listing with a present price overrides it even when it costs more, since
// buyers prefer guaranteed high-quality stock. Returns false when neither
// variant yields a priced listing.
func SelectBestListing(entry universalis.ItemEntry, worlds WorldDirectory) (Data, bool) {
	selected := entry.NQ.MinListingDC()
	quality := "NQ"

	if hq := entry.HQ.MinListingDC(); hq != nil && hq.Price != nil {
		selected = hq
		quality = "HQ"
	}

	if selected == nil || selected.Price == nil {
		return Data{}, false
	}

	worldID := ""
	if selected.WorldID != nil {
		worldID = strconv.FormatInt(*selected.WorldID, 10)
	}
	worldName, ok := worlds[worldID]
	if !ok {
		// Unknown world ids still render, just without a friendly name.
		worldName = worldID
	}

	// Average price and sale velocity follow the same HQ-else-NQ fallback,
	// independently of which variant won the listing.
	avg := entry.HQ.AveragePriceDC()
	if avg == nil {
		avg = entry.NQ.AveragePriceDC()
	}
	velocity := entry.HQ.SaleVelocityDC()
	if velocity == nil {
		velocity = entry.NQ.SaleVelocityDC()
	}

	return Data{
		PriceLabel:   formatNumber(*selected.Price) + " (" + quality + ")",
		WorldName:    worldName,
		AveragePrice: avg,
		SaleVelocity: velocity,
	}, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
