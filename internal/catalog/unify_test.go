package catalog

import (
	"testing"

	"labkart/internal"
)

var testBrands = []string{"Borosil", "Whatman", "Rankem"}

func collectRows(suppliers []internal.Supplier) []internal.Row {
	out := []internal.Row{}
	for row := range Unify(suppliers, testBrands) {
		out = append(out, row)
	}
	return out
}

func TestUnifyFlat(t *testing.T) {
	sup := internal.Supplier{
		Name:  "whatman",
		Shape: internal.ShapeFlat,
		Data: []any{
			map[string]any{"Product Name": "Filter Paper Grade 1", "brand": "Whatman", "Cat No": "1001-125", "Pack": "100 sheets", "price": float64(450)},
			map[string]any{"name": "Glass Microfiber Filter GF/C", "make": "Whatman", "catalogue_no": "1822-047", "rate": float64(2900)},
		},
	}

	rows := collectRows([]internal.Supplier{sup})
	if len(rows) != 2 {
		t.Fatalf("rows=%d", len(rows))
	}
	if rows[0].Name != "Filter Paper Grade 1" || rows[0].Code != "1001-125" || rows[0].Pack != "100 sheets" {
		t.Fatalf("row0: %+v", rows[0])
	}
	if rows[1].Brand != "Whatman" || rows[1].Code != "1822-047" {
		t.Fatalf("row1: %+v", rows[1])
	}
	if rows[1].Price != float64(2900) {
		t.Fatalf("price: %v", rows[1].Price)
	}
}

func TestUnifyGrouped(t *testing.T) {
	sup := internal.Supplier{
		Name:  "borosil",
		Shape: internal.ShapeGrouped,
		Data: []any{
			map[string]any{
				"group_name": "Beaker, Low Form",
				"brand":      "Borosil",
				"hsn":        "7017",
				"variants": []any{
					map[string]any{"capacity": "250 ml", "Cat No": "1000D21", "price": float64(95)},
					map[string]any{"capacity": "500 ml", "Cat No": "1000D24", "price": float64(140)},
				},
			},
			// Group without variants contributes nothing.
			map[string]any{"group_name": "Ghost Group"},
		},
	}

	rows := collectRows([]internal.Supplier{sup})
	if len(rows) != 2 {
		t.Fatalf("rows=%d", len(rows))
	}
	for _, row := range rows {
		if row.Name != "Beaker, Low Form" {
			t.Fatalf("name fallback: %+v", row)
		}
		if row.Brand != "Borosil" {
			t.Fatalf("brand from group: %+v", row)
		}
		if row.Group == nil {
			t.Fatalf("group not retained")
		}
		if row.HSN != "7017" {
			t.Fatalf("group hsn fallback: %+v", row)
		}
	}
	if rows[0].Code != "1000D21" || rows[1].Code != "1000D24" {
		t.Fatalf("codes: %q %q", rows[0].Code, rows[1].Code)
	}
}

func TestUnifySectioned(t *testing.T) {
	sup := internal.Supplier{
		Name:  "rankem",
		Shape: internal.ShapeSectioned,
		Data: map[string]any{
			"sections": []any{
				map[string]any{
					"title": "Acids",
					"brand": "Rankem",
					"subsections": []any{
						map[string]any{
							"title": "Mineral Acids",
							"items": []any{
								map[string]any{"name": "Hydrochloric Acid", "pack": "500 ml", "code": "H0100", "cas_no": "7647-01-0", "price": float64(280)},
							},
						},
					},
				},
				map[string]any{
					"title": "Indicators",
					"items": []any{
						map[string]any{"name": "Methyl Orange Indicator", "pack": "25 g", "price": "POR"},
					},
				},
			},
		},
	}

	rows := collectRows([]internal.Supplier{sup})
	if len(rows) != 2 {
		t.Fatalf("rows=%d", len(rows))
	}
	acid := rows[0]
	if acid.Name != "Hydrochloric Acid" || acid.CAS != "7647-01-0" || acid.Code != "H0100" {
		t.Fatalf("acid: %+v", acid)
	}
	if acid.Brand != "Rankem" {
		t.Fatalf("section brand did not propagate: %+v", acid)
	}
	indicator := rows[1]
	if indicator.Price != "POR" {
		t.Fatalf("POR sentinel lost: %v", indicator.Price)
	}
}

func TestUnifyMalformedSuppliers(t *testing.T) {
	suppliers := []internal.Supplier{
		{Name: "absent", Shape: internal.ShapeFlat, Data: nil},
		{Name: "not-a-list", Shape: internal.ShapeFlat, Data: map[string]any{"oops": true}},
		{Name: "grouped-wrong-type", Shape: internal.ShapeGrouped, Data: "garbage"},
		{Name: "sectioned-wrong-type", Shape: internal.ShapeSectioned, Data: []any{"nope"}},
		{Name: "untagged", Shape: internal.SourceShape("mystery"), Data: []any{}},
		{Name: "ok", Shape: internal.ShapeFlat, Data: []any{map[string]any{"name": "Spatula", "code": "SP-11"}}},
	}

	rows := collectRows(suppliers)
	if len(rows) != 1 {
		t.Fatalf("rows=%d, want the one good supplier only", len(rows))
	}
	if rows[0].Supplier != "ok" {
		t.Fatalf("supplier: %s", rows[0].Supplier)
	}
}

func TestUnifyLazy(t *testing.T) {
	data := make([]any, 100)
	for i := range data {
		data[i] = map[string]any{"name": "Item", "code": "X-100"}
	}
	sup := internal.Supplier{Name: "big", Shape: internal.ShapeFlat, Data: data}

	pulled := 0
	for range Unify([]internal.Supplier{sup}, nil) {
		pulled++
		if pulled == 3 {
			break
		}
	}
	if pulled != 3 {
		t.Fatalf("pulled=%d", pulled)
	}
}
