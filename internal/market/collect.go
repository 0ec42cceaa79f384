package market

import (
	"context"
	"strconv"

	"xiv_market_sheets/internal/retry"
	"xiv_market_sheets/internal/universalis"

	"github.com/rs/zerolog/log"
)

// Collect fetches aggregated market data for the given item ids in batches and
// reduces each response entry to its best listing. A batch that still fails
// after retries is logged and skipped; its items simply end up absent from the
// returned map, which row assembly reports as "no market data". The second
// return is the number of failed batches.
func Collect(ctx context.Context, client *universalis.Client, dataCenter string, itemIDs []string, worlds WorldDirectory, cfg retry.Config) (map[string]Data, int) {
	batches := Batches(itemIDs, BatchSize)
	log.Debug().
		Int("items", len(itemIDs)).
		Int("batches", len(batches)).
		Str("data_center", dataCenter).
		Msg("Collecting market data")

	collected := make(map[string]Data, len(itemIDs))
	failedBatches := 0

	for i, batch := range batches {
		resp, err := retry.WithRetry(ctx, cfg, "market batch fetch", func(ctx context.Context) (*universalis.AggregatedResponse, error) {
			return client.GetAggregated(ctx, dataCenter, batch)
		})
		if err != nil {
			failedBatches++
			log.Error().
				Err(err).
				Int("batch", i+1).
				Int("items", len(batch)).
				Msg("Market data batch failed, items will have no data")
			continue
		}

		for _, entry := range resp.Results {
			id := strconv.FormatInt(entry.ItemID, 10)
			data, ok := SelectBestListing(entry, worlds)
			if !ok {
				log.Warn().Str("item_id", id).Msg("No valid listing for item")
				continue
			}
			collected[id] = data
			log.Debug().
				Str("item_id", id).
				Str("price", data.PriceLabel).
				Str("world", data.WorldName).
				Msg("Selected listing")
		}
	}

	log.Debug().
		Int("items_with_data", len(collected)).
		Int("failed_batches", failedBatches).
		Msg("Finished collecting market data")

	return collected, failedBatches
}
