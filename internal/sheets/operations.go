package sheets

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

// ReadWorldDirectory reads the world id -> name mapping from its fixed range
// on the output sheet. Rows with a blank id or name are skipped.
func ReadWorldDirectory(ctx context.Context, client *Client, cfg Config) (map[string]string, error) {
	readRange := fmt.Sprintf("%s!%s", cfg.OutputSheet, cfg.WorldMapRange)
	log.Debug().Str("range", readRange).Msg("Reading world directory")

	rows, err := client.ReadRange(ctx, cfg.SpreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read world directory: %w", err)
	}

	worlds := make(map[string]string)
	for _, row := range rows {
		id := cellString(row, 0)
		name := cellString(row, 1)
		if id != "" && name != "" {
			worlds[id] = name
		}
	}

	log.Debug().Int("worlds", len(worlds)).Msg("Built world directory")
	return worlds, nil
}

// ReadItemNames reads the item name column from the source sheet, starting at
// the configured cell and extending to the last populated row. Blank cells are
// filtered out before processing.
func ReadItemNames(ctx context.Context, client *Client, cfg Config) ([]string, error) {
	column := columnOf(cfg.SourceStart)
	// Open-ended column range; the API stops at the last populated row.
	readRange := fmt.Sprintf("%s!%s:%s", cfg.SourceSheet, cfg.SourceStart, column)
	log.Debug().Str("range", readRange).Msg("Reading item names")

	rows, err := client.ReadRange(ctx, cfg.SpreadsheetID, readRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read item names: %w", err)
	}

	var names []string
	for _, row := range rows {
		if name := cellString(row, 0); name != "" {
			names = append(names, name)
		}
	}

	log.Debug().
		Int("rows", len(rows)).
		Int("names", len(names)).
		Msg("Read item names")
	return names, nil
}

// WriteMarketRows overwrites the output block starting at row 2, column A.
func WriteMarketRows(ctx context.Context, client *Client, cfg Config, rows [][]interface{}) error {
	if len(rows) == 0 {
		log.Debug().Msg("No rows to write, skipping sheet update")
		return nil
	}

	writeRange := fmt.Sprintf("%s!A2", cfg.OutputSheet)
	if err := client.UpdateRange(ctx, cfg.SpreadsheetID, writeRange, rows); err != nil {
		return fmt.Errorf("failed to write market rows: %w", err)
	}

	log.Info().Int("rows", len(rows)).Str("range", writeRange).Msg("Wrote market rows")
	return nil
}

// cellString safely extracts a trimmed string from a row at the given index.
func cellString(row []interface{}, index int) string {
	if len(row) > index && row[index] != nil {
		return strings.TrimSpace(fmt.Sprintf("%v", row[index]))
	}
	return ""
}

// columnOf returns the column letters of an A1-style cell reference ("E5" -> "E").
func columnOf(cell string) string {
	end := 0
	for end < len(cell) && unicode.IsLetter(rune(cell[end])) {
		end++
	}
	return cell[:end]
}
