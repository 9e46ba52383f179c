package catalog

import (
	"labkart/internal"
	"labkart/internal/util"
)

// CandidateSlugs returns every slug under which a row should be reachable,
// canonical form first. Each entry joins a different subset of the row's
// fields so a caller holding partial context (name without brand, bare code)
// still lands on the row. Combinations that collapse to the same string keep
// only their first occurrence.
func CandidateSlugs(row internal.Row) []string {
	combos := [][]string{
		{row.Brand, row.Name, row.Pack, row.Code},
		{row.Brand, row.Name, row.Pack},
		{row.Brand, row.Name, row.Code},
		{row.Brand, row.Name},
		{row.Name, row.Pack},
		{row.Name, row.Pack, row.Code},
		{row.Brand, row.Code},
		{row.Code},
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(combos))
	for _, combo := range combos {
		slug := util.SlugJoin(combo...)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	return out
}

// PrimarySlug is the canonical slug for a row: the first candidate. Exposed
// so page generation can compute a row's URL without a lookup.
func PrimarySlug(row internal.Row) string {
	candidates := CandidateSlugs(row)
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}
