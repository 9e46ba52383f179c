package catalog

import (
	"encoding/json"
	"sort"
	"strings"

	"labkart/internal"
	"labkart/internal/util"
)

// Fallback key lists, most common spelling first. Order encodes priority.
// These are grown empirically from observed supplier exports; the code list
// is long because every supplier invents its own spelling.
var (
	nameKeys  = []string{"name", "product_name", "product", "item_name", "title", "description", "particulars", "item"}
	brandKeys = []string{"brand", "brand_name", "make", "manufacturer", "mfr", "company"}
	packKeys  = []string{"pack", "pack_size", "packing", "pack_of", "capacity", "size", "unit_size", "qty_per_pack"}
	codeKeys  = []string{
		"code", "cat_no", "catalog_no", "catalogue_no", "product_code", "item_code",
		"order_code", "order_no", "ref_no", "ref", "article_no", "article", "sku",
		"part_no", "model_no", "model", "cat", "catno",
	}
	hsnKeys   = []string{"hsn", "hsn_code", "hsn_sac", "tariff_code", "tariff"}
	casKeys   = []string{"cas", "cas_no", "cas_number", "cas_registry_no"}
	priceKeys = []string{"price", "rate", "mrp", "list_price", "unit_price", "price_inr", "price_rs", "amount"}
)

// Group-level keys consulted when an item carries no usable name of its own.
var groupNameKeys = []string{"group_name", "group", "name", "title", "product", "series"}

// Pick returns the first non-empty value among the candidate keys, checking
// the exact key first and then the normalized spelling of every record key.
// Absent keys, nils and empty strings are all "not present". Never panics
// on any record shape.
func Pick(rec internal.Record, keys ...string) string {
	return util.Stringify(pickRaw(rec, keys...))
}

// pickRaw is Pick without the string conversion, for fields like price where
// the original value type must survive. Normalized-key matches are taken in
// sorted record-key order so derivation stays deterministic across runs.
func pickRaw(rec internal.Record, keys ...string) any {
	if rec == nil {
		return nil
	}
	for _, key := range keys {
		if raw, ok := rec[key]; ok && util.Stringify(raw) != "" {
			return raw
		}
		want := util.NormalizeKey(key)
		var matched []string
		for recKey, raw := range rec {
			if util.NormalizeKey(recKey) == want && util.Stringify(raw) != "" {
				matched = append(matched, recKey)
			}
		}
		if len(matched) > 0 {
			sort.Strings(matched)
			return rec[matched[0]]
		}
	}
	return nil
}

func deriveName(rec internal.Record, group internal.Group) string {
	if v := Pick(rec, nameKeys...); v != "" {
		return v
	}
	return Pick(internal.Record(group), groupNameKeys...)
}

// deriveBrand checks explicit brand fields on the item and its group, then
// falls back to sniffing the serialized record for a configured brand name.
func deriveBrand(rec internal.Record, group internal.Group, patterns []string) string {
	if v := Pick(rec, brandKeys...); v != "" {
		return v
	}
	if v := Pick(internal.Record(group), brandKeys...); v != "" {
		return v
	}
	blob, err := json.Marshal(rec)
	if err != nil {
		return ""
	}
	haystack := strings.ToLower(string(blob))
	for _, p := range patterns {
		if strings.Contains(haystack, strings.ToLower(p)) {
			return p
		}
	}
	return ""
}

func derivePack(rec internal.Record) string {
	return Pick(rec, packKeys...)
}

// deriveCode prefers an explicit code field; only when every spelling misses
// does it fall back to inferring one from the display name.
func deriveCode(rec internal.Record, name string) string {
	if v := Pick(rec, codeKeys...); v != "" {
		return v
	}
	return InferCode(name)
}

// deriveHSN checks the group too: tax classification is a shared attribute
// suppliers usually state once per group.
func deriveHSN(rec internal.Record, group internal.Group) string {
	if v := Pick(rec, hsnKeys...); v != "" {
		return v
	}
	return Pick(internal.Record(group), hsnKeys...)
}

func deriveCAS(rec internal.Record) string {
	return Pick(rec, casKeys...)
}

// derivePrice keeps the raw value: a number stays a number, the
// price-on-request sentinel stays the literal string, absence stays nil.
func derivePrice(rec internal.Record) any {
	return pickRaw(rec, priceKeys...)
}
