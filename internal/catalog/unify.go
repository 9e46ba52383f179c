package catalog

import (
	"iter"

	"labkart/internal"
)

// Unify yields one canonical Row per product across every supplier, in
// supplier order. Each supplier's native nesting shape has its own small
// adapter; adding a supplier means adding a tagged entry, not touching a
// universal parser. A missing, malformed or oddly-typed asset contributes
// zero rows instead of failing the sequence.
//
// Production is lazy: rows are derived as the caller pulls them, so a
// partial scan does not pay for the full catalog.
func Unify(suppliers []internal.Supplier, brandPatterns []string) iter.Seq[internal.Row] {
	return func(yield func(internal.Row) bool) {
		for _, sup := range suppliers {
			if !walkSupplier(sup, brandPatterns, yield) {
				return
			}
		}
	}
}

func walkSupplier(sup internal.Supplier, brands []string, yield func(internal.Row) bool) bool {
	switch sup.Shape {
	case internal.ShapeFlat:
		return walkFlat(sup, brands, yield)
	case internal.ShapeGrouped:
		return walkGrouped(sup, brands, yield)
	case internal.ShapeSectioned:
		return walkSectioned(sup, brands, yield)
	default:
		return true
	}
}

func walkFlat(sup internal.Supplier, brands []string, yield func(internal.Row) bool) bool {
	for _, rec := range asRecords(sup.Data) {
		if !yield(buildRow(sup.Name, rec, nil, brands)) {
			return false
		}
	}
	return true
}

func walkGrouped(sup internal.Supplier, brands []string, yield func(internal.Row) bool) bool {
	items, ok := sup.Data.([]any)
	if !ok {
		return true
	}
	for _, entry := range items {
		group, ok := asRecord(entry)
		if !ok {
			continue
		}
		for _, rec := range asRecords(group["variants"]) {
			if !yield(buildRow(sup.Name, rec, internal.Group(group), brands)) {
				return false
			}
		}
	}
	return true
}

// walkSectioned flattens section/sub-section/item hierarchies of any depth.
// Section titles travel down as group context for field fallback on leaf
// items.
func walkSectioned(sup internal.Supplier, brands []string, yield func(internal.Row) bool) bool {
	root, ok := asRecord(sup.Data)
	if !ok {
		return true
	}
	return walkSection(sup.Name, internal.Group(root), brands, yield)
}

func walkSection(supplier string, section internal.Group, brands []string, yield func(internal.Row) bool) bool {
	for _, rec := range asRecords(section["items"]) {
		if !yield(buildRow(supplier, rec, section, brands)) {
			return false
		}
	}
	for _, key := range []string{"sections", "subsections", "sub_sections"} {
		children, ok := section[key].([]any)
		if !ok {
			continue
		}
		for _, child := range children {
			childRec, ok := asRecord(child)
			if !ok {
				continue
			}
			if !walkSection(supplier, inheritBrand(section, internal.Group(childRec)), brands, yield) {
				return false
			}
		}
	}
	return true
}

// inheritBrand carries a section-level brand down to sub-sections that do
// not declare their own. The child is cloned; asset data is never mutated.
func inheritBrand(parent, child internal.Group) internal.Group {
	if Pick(internal.Record(child), brandKeys...) != "" {
		return child
	}
	brand := Pick(internal.Record(parent), brandKeys...)
	if brand == "" {
		return child
	}
	merged := make(internal.Group, len(child)+1)
	for k, v := range child {
		merged[k] = v
	}
	merged["brand"] = brand
	return merged
}

// buildRow derives every canonical field exactly once. Rows are never
// re-derived or merged afterwards.
func buildRow(supplier string, rec internal.Record, group internal.Group, brands []string) internal.Row {
	name := deriveName(rec, group)
	return internal.Row{
		Supplier: supplier,
		Brand:    deriveBrand(rec, group, brands),
		Name:     name,
		Pack:     derivePack(rec),
		Code:     deriveCode(rec, name),
		HSN:      deriveHSN(rec, group),
		CAS:      deriveCAS(rec),
		Price:    derivePrice(rec),
		Raw:      rec,
		Group:    group,
	}
}

func asRecord(v any) (internal.Record, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return internal.Record(m), true
}

func asRecords(v any) []internal.Record {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]internal.Record, 0, len(items))
	for _, item := range items {
		if rec, ok := asRecord(item); ok {
			out = append(out, rec)
		}
	}
	return out
}
