package catalog

import (
	"testing"

	"labkart/internal"
	"labkart/internal/util"
)

func testResolver(suppliers []internal.Supplier) *Resolver {
	return NewResolver(func() []internal.Supplier { return suppliers }, testBrands)
}

func TestLookupWhatmanExample(t *testing.T) {
	resolver := testResolver([]internal.Supplier{{
		Name:  "whatman",
		Shape: internal.ShapeFlat,
		Data: []any{
			map[string]any{"name": "Filter Paper Grade 1", "brand": "Whatman", "code": "1001-125", "pack": "100 sheets", "price": float64(450)},
		},
	}})

	for _, id := range []string{
		"whatman-filter-paper-grade-1-100-sheets-1001-125",
		"whatman-filter-paper-grade-1",
		"1001-125",
		"Whatman Filter Paper Grade 1", // canonicalized before lookup
	} {
		row, ok := resolver.Lookup(id)
		if !ok {
			t.Fatalf("no match for %q", id)
		}
		if row.Code != "1001-125" {
			t.Fatalf("wrong row for %q: %+v", id, row)
		}
	}

	if _, ok := resolver.Lookup("whatman-filter-paper-grade-9"); ok {
		t.Fatal("unexpected match")
	}
	if _, ok := resolver.Lookup(""); ok {
		t.Fatal("empty query matched")
	}
}

func TestLookupCodeReachability(t *testing.T) {
	resolver := testResolver([]internal.Supplier{{
		Name:  "rankem",
		Shape: internal.ShapeFlat,
		Data: []any{
			map[string]any{"name": "Hydrochloric Acid", "code": "H0100"},
			map[string]any{"name": "Sulphuric Acid", "code": "S0200"},
		},
	}})

	for _, row := range resolver.Rows() {
		if row.Code == "" {
			continue
		}
		got, ok := resolver.Lookup(row.Code)
		if !ok {
			t.Fatalf("code %q unreachable", row.Code)
		}
		if got.Code != row.Code {
			t.Fatalf("code %q resolved wrong row", row.Code)
		}
	}
}

func TestLookupIdempotent(t *testing.T) {
	resolver := testResolver([]internal.Supplier{{
		Name:  "whatman",
		Shape: internal.ShapeFlat,
		Data:  []any{map[string]any{"name": "Filter Paper Grade 1", "code": "1001-125"}},
	}})

	first, ok := resolver.Lookup("1001-125")
	if !ok {
		t.Fatal("no match")
	}
	second, ok := resolver.Lookup("1001-125")
	if !ok {
		t.Fatal("no match on second call")
	}
	if first != second {
		t.Fatal("lookups returned different row references")
	}
}

func TestFirstClaimWins(t *testing.T) {
	// Both suppliers produce the identical canonical slug and code; the
	// earlier supplier in iteration order keeps both index entries.
	suppliers := []internal.Supplier{
		{
			Name:  "first",
			Shape: internal.ShapeFlat,
			Data:  []any{map[string]any{"name": "Wash Bottle 500", "code": "WB-500", "price": float64(90)}},
		},
		{
			Name:  "second",
			Shape: internal.ShapeFlat,
			Data:  []any{map[string]any{"name": "Wash Bottle 500", "code": "WB-500", "price": float64(80)}},
		},
	}
	resolver := testResolver(suppliers)

	row, ok := resolver.Lookup("wash-bottle-500-wb-500")
	if !ok {
		t.Fatal("no match")
	}
	if row.Supplier != "first" {
		t.Fatalf("slug claimed by %s", row.Supplier)
	}

	byCode, ok := resolver.Lookup("WB-500")
	if !ok {
		t.Fatal("no code match")
	}
	if byCode.Supplier != "first" {
		t.Fatalf("code claimed by %s", byCode.Supplier)
	}

	// Both rows still exist; only the lookup keys collapsed.
	if got := len(resolver.Rows()); got != 2 {
		t.Fatalf("rows=%d", got)
	}
}

func TestEmptySupplierContributesNothing(t *testing.T) {
	resolver := testResolver([]internal.Supplier{
		{Name: "null", Shape: internal.ShapeFlat, Data: nil},
		{Name: "empty", Shape: internal.ShapeFlat, Data: []any{}},
	})

	if stats := resolver.Stats(); stats["rows"] != 0 {
		t.Fatalf("stats: %v", stats)
	}
	if _, ok := resolver.Lookup("anything-at-all"); ok {
		t.Fatal("unexpected match")
	}
}

func TestBuildDrainsSourcesOnce(t *testing.T) {
	calls := 0
	resolver := NewResolver(func() []internal.Supplier {
		calls++
		return []internal.Supplier{{
			Name:  "whatman",
			Shape: internal.ShapeFlat,
			Data:  []any{map[string]any{"name": "Filter Paper Grade 1", "code": "1001-125"}},
		}}
	}, nil)

	resolver.Lookup("1001-125")
	resolver.Lookup("1001-125")
	resolver.Rows()
	resolver.Stats()
	if calls != 1 {
		t.Fatalf("sources loaded %d times", calls)
	}
}

func TestReport(t *testing.T) {
	resolver := testResolver([]internal.Supplier{{
		Name:  "whatman",
		Shape: internal.ShapeFlat,
		Data:  []any{map[string]any{"name": "Filter Paper Grade 1", "brand": "Whatman", "code": "1001-125", "pack": "100 sheets"}},
	}})

	report := resolver.Report("1001-125")
	if !report.Found || report.Brand != "Whatman" || report.Code != "1001-125" {
		t.Fatalf("report: %+v", report)
	}
	if report.Canonical != "whatman-filter-paper-grade-1-100-sheets-1001-125" {
		t.Fatalf("canonical: %q", report.Canonical)
	}
	if report.Slug != util.Slugify("1001-125") {
		t.Fatalf("slug: %q", report.Slug)
	}

	miss := resolver.Report("no-such-thing")
	if miss.Found || miss.Brand != "" {
		t.Fatalf("miss report: %+v", miss)
	}
}
