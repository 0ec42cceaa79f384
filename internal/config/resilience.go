package config

import (
	"time"

	"xiv_market_sheets/internal/retry"
)

// ResilienceConfig groups retry presets for the three kinds of remote call a
// pass makes: the one-time reference dataset download, per-batch market data
// requests, and Google Sheets reads/writes.
type ResilienceConfig struct {
	DatasetFetch  retry.Config
	MarketRequest retry.Config
	SheetOp       retry.Config
}

var DefaultResilienceConfig = ResilienceConfig{
	DatasetFetch: retry.Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    60 * time.Second,
	},
	MarketRequest: retry.Config{
		MaxRetries: 2,
		BaseDelay:  1 * time.Second,
		MaxDelay:   15 * time.Second,
		Timeout:    15 * time.Second,
	},
	SheetOp: retry.Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    15 * time.Second,
	},
}
