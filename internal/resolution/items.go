package resolution

import (
	"github.com/rs/zerolog/log"
)

// ResolvedItem pairs an input name with its resolved id. ID is empty when
// resolution failed; the row keeps its place so output order matches input.
type ResolvedItem struct {
	Name string
	ID   string
}

// ResolveAll resolves every input name against the index, preserving input
// order. Unresolved names are kept with an empty ID so row assembly can emit a
// failure status for them.
func ResolveAll(ix *Index, names []string) []ResolvedItem {
	resolved := make([]ResolvedItem, 0, len(names))
	misses := 0

	for _, name := range names {
		id, ok := ix.Resolve(name)
		if !ok {
			misses++
			log.Debug().Str("name", name).Msg("Failed to resolve item name")
		}
		resolved = append(resolved, ResolvedItem{Name: name, ID: id})
	}

	log.Debug().
		Int("names", len(names)).
		Int("resolved", len(names)-misses).
		Int("unresolved", misses).
		Msg("Resolved item names")

	return resolved
}

// UniqueIDs returns the resolved ids in first-seen order with duplicates
// removed. Two input names can share an id when the dataset maps both to the
// same entry; market data is id-keyed, so one fetch serves both rows.
func UniqueIDs(resolved []ResolvedItem) []string {
	seen := make(map[string]bool, len(resolved))
	var ids []string
	for _, item := range resolved {
		if item.ID == "" || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		ids = append(ids, item.ID)
	}
	return ids
}
