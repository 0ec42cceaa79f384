package main

import (
	"context"
	"os"
	"time"

	"xiv_market_sheets/internal/config"
	"xiv_market_sheets/internal/market"
	"xiv_market_sheets/internal/notifications"
	"xiv_market_sheets/internal/resolution"
	"xiv_market_sheets/internal/retry"
	"xiv_market_sheets/internal/sheets"
	"xiv_market_sheets/internal/teamcraft"
	"xiv_market_sheets/internal/universalis"

	"github.com/rs/zerolog/log"
)

func main() {
	log.Debug().Msg("Starting application")
	setupEnvironment()

	ctx := context.Background()
	sheetsClient, datasetClient, marketClient := initializeClients(ctx)
	notifyClient := initializeNotificationClient()

	sheetCfg := sheets.ConfigFromEnv()
	dataCenter := getEnvWithDefault("DATA_CENTER", "Aether")

	intervalStr := os.Getenv("SYNC_INTERVAL")
	if intervalStr == "" {
		// Single pass, the default: run once and exit.
		if err := runSync(ctx, sheetsClient, datasetClient, marketClient, notifyClient, sheetCfg, dataCenter); err != nil {
			log.Fatal().Err(err).Msg("Sync failed")
		}
		return
	}

	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		log.Fatal().Err(err).Str("value", intervalStr).Msg("Invalid SYNC_INTERVAL")
	}

	log.Info().Dur("interval", interval).Msg("Starting market data sync. Running immediately and then on every tick...")

	if err := runSync(ctx, sheetsClient, datasetClient, marketClient, notifyClient, sheetCfg, dataCenter); err != nil {
		log.Error().Err(err).Msg("Sync pass failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := runSync(ctx, sheetsClient, datasetClient, marketClient, notifyClient, sheetCfg, dataCenter); err != nil {
			log.Error().Err(err).Msg("Sync pass failed")
		}
	}
}

func initializeClients(ctx context.Context) (*sheets.Client, *teamcraft.Client, *universalis.Client) {
	log.Debug().Msg("Initializing clients")
	credsFile := "credentials.json"

	sheetsClient, err := sheets.NewClient(ctx, credsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}

	log.Debug().Msg("Clients initialized successfully")
	return sheetsClient, teamcraft.NewClient(), universalis.NewClient()
}

func initializeNotificationClient() *notifications.Client {
	enabled := getEnvWithDefault("NTFY_ENABLED", "false") == "true"
	baseURL := getEnvWithDefault("NTFY_URL", "https://ntfy.sh")
	topic := getEnvWithDefault("NTFY_TOPIC", "xiv-market-sheets")

	client := notifications.NewClient(baseURL, topic, enabled)

	if enabled {
		log.Info().Str("topic", topic).Msg("Notifications enabled")
	} else {
		log.Debug().Msg("Notifications disabled")
	}

	return client
}

// runSync performs one full pass: read inputs, resolve names, collect market
// data, write the output block. Only the preconditions of spreadsheet access
// and the dataset download fail the pass; everything downstream degrades to
// per-row status text instead.
func runSync(ctx context.Context, sheetsClient *sheets.Client, datasetClient *teamcraft.Client, marketClient *universalis.Client, notifyClient *notifications.Client, sheetCfg sheets.Config, dataCenter string) error {
	log.Debug().Msg("Starting sync pass")
	start := time.Now()
	marketClient.ResetAPICallCount()
	resilience := config.DefaultResilienceConfig

	worlds, err := retry.WithRetry(ctx, resilience.SheetOp, "world directory read", func(ctx context.Context) (map[string]string, error) {
		return sheets.ReadWorldDirectory(ctx, sheetsClient, sheetCfg)
	})
	if err != nil {
		return err
	}

	names, err := retry.WithRetry(ctx, resilience.SheetOp, "item names read", func(ctx context.Context) ([]string, error) {
		return sheets.ReadItemNames(ctx, sheetsClient, sheetCfg)
	})
	if err != nil {
		return err
	}
	if len(names) == 0 {
		log.Warn().Msg("No item names in source sheet, nothing to do")
		return nil
	}

	dataset, err := retry.WithRetry(ctx, resilience.DatasetFetch, "dataset fetch", func(ctx context.Context) (teamcraft.ItemData, error) {
		return datasetClient.FetchItems(ctx)
	})
	if err != nil {
		return err
	}

	index := resolution.BuildIndex(dataset)
	resolved := resolution.ResolveAll(index, names)
	itemIDs := resolution.UniqueIDs(resolved)

	data, failedBatches := market.Collect(ctx, marketClient, dataCenter, itemIDs, market.WorldDirectory(worlds), resilience.MarketRequest)

	rows, summary := market.AssembleRows(resolved, data)

	_, err = retry.WithRetry(ctx, resilience.SheetOp, "output write", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, sheets.WriteMarketRows(ctx, sheetsClient, sheetCfg, rows)
	})
	if err != nil {
		return err
	}

	summary.FailedBatches = failedBatches
	summary.APICalls = marketClient.GetAPICallCount()
	summary.Duration = time.Since(start)

	log.Info().
		Int("rows", summary.Rows).
		Int("success", summary.Success).
		Int("no_data", summary.NoData).
		Int("unresolved", summary.Unresolved).
		Int("failed_batches", summary.FailedBatches).
		Int64("api_calls", summary.APICalls).
		Dur("duration", summary.Duration).
		Msg("Sync pass complete")

	notifyClient.NotifySyncSummary(ctx, summary)
	return nil
}
