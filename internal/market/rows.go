package market

import (
	"fmt"
	"time"

	"xiv_market_sheets/internal/resolution"

	"github.com/rs/zerolog/log"
)

// Per-row status strings written to the last output column.
const (
	StatusSuccess    = "Success"
	StatusNoData     = "No market data"
	StatusUnresolved = "Name/ID not found"
)

// Summary describes one sync pass for logging and notifications.
type Summary struct {
	Rows          int
	Success       int
	NoData        int
	Unresolved    int
	FailedBatches int
	APICalls      int64
	Duration      time.Duration
}

// AssembleRows builds one output row per resolved input, in input order.
// Columns: name, id link, price label, world name, average price, sale
// velocity, status. Failed rows keep their position with blank data cells so
// row N of the output always corresponds to row N of the filtered input.
func AssembleRows(resolved []resolution.ResolvedItem, data map[string]Data) ([][]interface{}, Summary) {
	rows := make([][]interface{}, 0, len(resolved))
	summary := Summary{Rows: len(resolved)}

	for _, item := range resolved {
		switch entry, ok := data[item.ID]; {
		case item.ID == "":
			summary.Unresolved++
			rows = append(rows, []interface{}{item.Name, "", "", "", "", "", StatusUnresolved})
		case !ok:
			summary.NoData++
			rows = append(rows, []interface{}{item.Name, item.ID, "", "", "", "", StatusNoData})
		default:
			summary.Success++
			rows = append(rows, []interface{}{
				item.Name,
				itemLink(item.ID),
				entry.PriceLabel,
				entry.WorldName,
				numberCell(entry.AveragePrice),
				numberCell(entry.SaleVelocity),
				StatusSuccess,
			})
		}
	}

	log.Debug().
		Int("rows", summary.Rows).
		Int("success", summary.Success).
		Int("no_data", summary.NoData).
		Int("unresolved", summary.Unresolved).
		Msg("Assembled output rows")

	return rows, summary
}

// itemLink renders the id cell as a hyperlink to the item's market page.
func itemLink(id string) string {
	return fmt.Sprintf(`=HYPERLINK("https://universalis.app/market/%s", "%s")`, id, id)
}

// numberCell maps an optional statistic to a sheet cell, blank when absent.
func numberCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
