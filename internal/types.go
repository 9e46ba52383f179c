package internal

// Record is a single supplier export entry as deserialized. Supplier exports
// carry no fixed schema; key spellings and nesting differ per supplier and
// sometimes per item, so all field access goes through the derivers.
type Record map[string]any

// Group is a parent record whose shared attributes apply to the variant
// records nested under it. Suppliers that export flat lists have no groups.
type Group map[string]any

type SourceShape string

const (
	ShapeFlat      SourceShape = "flat"
	ShapeGrouped   SourceShape = "grouped"
	ShapeSectioned SourceShape = "sectioned"
)

// Supplier is one configured catalog source: a name, the nesting shape of its
// export, and the already-deserialized asset data.
type Supplier struct {
	Name  string
	Shape SourceShape
	Data  any
}

// Row is the canonical product representation, independent of any supplier's
// native schema. Brand and Name are derived once at construction and never
// re-derived. Code may legitimately be empty; that only reduces how many
// candidate slugs resolve to the row.
type Row struct {
	Supplier string `json:"supplier"`
	Brand    string `json:"brand"`
	Name     string `json:"name"`
	Pack     string `json:"pack,omitempty"`
	Code     string `json:"code,omitempty"`
	HSN      string `json:"hsn,omitempty"`
	CAS      string `json:"cas,omitempty"`
	Price    any    `json:"price,omitempty"`
	Raw      Record `json:"raw,omitempty"`
	Group    Group  `json:"group,omitempty"`
}

// ResolveReport is the diagnostics view of a single lookup.
type ResolveReport struct {
	Query     string `json:"query"`
	Slug      string `json:"slug"`
	Found     bool   `json:"found"`
	Supplier  string `json:"supplier,omitempty"`
	Brand     string `json:"brand,omitempty"`
	Name      string `json:"name,omitempty"`
	Code      string `json:"code,omitempty"`
	Canonical string `json:"canonical,omitempty"`
}
