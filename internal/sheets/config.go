package sheets

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Config locates the three regions a pass touches: the source column of item
// names, the world-directory range on the output sheet, and the output block.
type Config struct {
	SpreadsheetID string
	SourceSheet   string
	OutputSheet   string
	WorldMapRange string // two columns, world id then name, on the output sheet
	SourceStart   string // first cell of the item name column on the source sheet
}

// ConfigFromEnv reads the sheet layout from the environment, with the layout
// of the original spreadsheet as defaults.
func ConfigFromEnv() Config {
	return Config{
		SpreadsheetID: getRequiredEnv("SPREADSHEET_ID"),
		SourceSheet:   getEnvWithDefault("SOURCE_SHEET", "Materials"),
		OutputSheet:   getEnvWithDefault("OUTPUT_SHEET", "MarketData"),
		WorldMapRange: getEnvWithDefault("WORLD_MAP_RANGE", "Y2:Z86"),
		SourceStart:   getEnvWithDefault("SOURCE_DATA_START", "E5"),
	}
}

// getRequiredEnv fetches a required environment variable or exits if not set.
func getRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Msgf("%s environment variable is required", key)
	}
	return value
}

// getEnvWithDefault fetches an environment variable with a default fallback.
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
