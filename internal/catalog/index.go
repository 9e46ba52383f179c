package catalog

import (
	"iter"
	"sync"

	"labkart/internal"
	"labkart/internal/util"
)

// Index is the read-only resolution state: every candidate slug and every
// canonicalized code mapped to its row, plus the unified rows in source
// order. Built once, never mutated afterwards, so concurrent readers need
// no locking.
type Index struct {
	BySlug map[string]*internal.Row
	ByCode map[string]*internal.Row
	Rows   []internal.Row
}

// BuildIndex drains the row sequence exactly once. First-claim-wins: when
// two rows produce the same slug or code key, the earlier row in supplier
// iteration order keeps it and the later registration is dropped. Supplier
// order is fixed, so every build resolves collisions identically.
func BuildIndex(rows iter.Seq[internal.Row]) *Index {
	idx := &Index{
		BySlug: map[string]*internal.Row{},
		ByCode: map[string]*internal.Row{},
	}

	for row := range rows {
		idx.Rows = append(idx.Rows, row)
	}

	for i := range idx.Rows {
		row := &idx.Rows[i]
		for _, slug := range CandidateSlugs(*row) {
			if _, taken := idx.BySlug[slug]; !taken {
				idx.BySlug[slug] = row
			}
		}
		if row.Code != "" {
			code := util.Slugify(row.Code)
			if _, taken := idx.ByCode[code]; code != "" && !taken {
				idx.ByCode[code] = row
			}
		}
	}

	return idx
}

// Resolver owns the lazily built Index. The index is a pure function of the
// supplier assets, so it is built at most once per process; a restart is the
// only refresh mechanism.
type Resolver struct {
	sources func() []internal.Supplier
	brands  []string

	once sync.Once
	idx  *Index
}

// NewResolver defers asset loading and unification until the first call
// that needs the index.
func NewResolver(sources func() []internal.Supplier, brandPatterns []string) *Resolver {
	return &Resolver{sources: sources, brands: brandPatterns}
}

func (r *Resolver) index() *Index {
	r.once.Do(func() {
		r.idx = BuildIndex(Unify(r.sources(), r.brands))
	})
	return r.idx
}

// Lookup canonicalizes the identifier text and resolves it, slugs first,
// then codes. The returned pointer is stable: the same input always yields
// the same row for the life of the process.
func (r *Resolver) Lookup(text string) (*internal.Row, bool) {
	idx := r.index()
	key := util.Slugify(text)
	if key == "" {
		return nil, false
	}
	if row, ok := idx.BySlug[key]; ok {
		return row, true
	}
	if row, ok := idx.ByCode[key]; ok {
		return row, true
	}
	return nil, false
}

// Report wraps Lookup for the diagnostics surfaces.
func (r *Resolver) Report(text string) internal.ResolveReport {
	report := internal.ResolveReport{Query: text, Slug: util.Slugify(text)}
	row, ok := r.Lookup(text)
	if !ok {
		return report
	}
	report.Found = true
	report.Supplier = row.Supplier
	report.Brand = row.Brand
	report.Name = row.Name
	report.Code = row.Code
	report.Canonical = PrimarySlug(*row)
	return report
}

// Rows returns the unified rows in source order.
func (r *Resolver) Rows() []internal.Row {
	return r.index().Rows
}

// Stats reports index sizes for the diagnostics endpoints.
func (r *Resolver) Stats() map[string]int {
	idx := r.index()
	return map[string]int{
		"rows":  len(idx.Rows),
		"slugs": len(idx.BySlug),
		"codes": len(idx.ByCode),
	}
}
