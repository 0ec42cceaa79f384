package resolution

import (
	"sort"
	"strings"

	"xiv_market_sheets/internal/teamcraft"

	"github.com/rs/zerolog/log"
)

// Index maps normalized (trimmed, lowercased) English item names to item ids.
// Built once per pass so per-row resolution is a map lookup instead of a scan
// over the full reference dataset.
type Index struct {
	byName map[string]string
}

// BuildIndex precomputes the name lookup from the reference dataset. Ids are
// visited in sorted order so a display name shared by multiple entries always
// resolves to the lowest id for a given dataset snapshot; the upstream dataset
// does not promise unique names.
func BuildIndex(items teamcraft.ItemData) *Index {
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	byName := make(map[string]string, len(items))
	collisions := 0
	for _, id := range ids {
		name := normalize(items[id].En)
		if name == "" {
			continue
		}
		if existing, ok := byName[name]; ok {
			collisions++
			log.Debug().
				Str("name", name).
				Str("kept_id", existing).
				Str("dropped_id", id).
				Msg("Duplicate display name in dataset, keeping first id")
			continue
		}
		byName[name] = id
	}

	log.Debug().
		Int("entries", len(byName)).
		Int("collisions", collisions).
		Msg("Built item name index")

	return &Index{byName: byName}
}

// Resolve maps a display name to its item id. Matching is case-insensitive and
// ignores surrounding whitespace. The second return is false when the name has
// no match in the dataset.
func (ix *Index) Resolve(name string) (string, bool) {
	id, ok := ix.byName[normalize(name)]
	return id, ok
}

// Len returns the number of distinct resolvable names.
func (ix *Index) Len() int {
	return len(ix.byName)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
