// Package assets deserializes supplier catalog exports into in-memory
// records for the unifier. Three catalogs ship embedded with the binary;
// extra exports dropped into the asset directory (json, xlsx, html, pdf)
// are appended after them. A broken asset contributes an empty supplier,
// never an error that would take the rest of the catalog down.
package assets

import (
	"embed"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"labkart/internal"
	"labkart/internal/config"
)

//go:embed data/*.json
var builtinFS embed.FS

// Built-in suppliers in fixed iteration order. The order is part of the
// resolution contract: slug collisions resolve to the earliest supplier.
var builtinOrder = []struct {
	name  string
	shape internal.SourceShape
}{
	{"borosil", internal.ShapeGrouped},
	{"whatman", internal.ShapeFlat},
	{"rankem", internal.ShapeSectioned},
}

// Builtin returns the embedded supplier catalogs.
func Builtin() []internal.Supplier {
	out := make([]internal.Supplier, 0, len(builtinOrder))
	for _, entry := range builtinOrder {
		blob, err := builtinFS.ReadFile("data/" + entry.name + ".json")
		if err != nil {
			log.Printf("assets: missing builtin %s: %v", entry.name, err)
			out = append(out, internal.Supplier{Name: entry.name, Shape: entry.shape})
			continue
		}
		var data any
		if err := json.Unmarshal(blob, &data); err != nil {
			log.Printf("assets: malformed builtin %s: %v", entry.name, err)
			data = nil
		}
		out = append(out, internal.Supplier{Name: entry.name, Shape: entry.shape, Data: data})
	}
	return out
}

// LoadAll returns the built-in suppliers followed by any extra exports in
// the configured asset directory.
func LoadAll(cfg config.Config) []internal.Supplier {
	return append(Builtin(), LoadDir(cfg.AssetDir)...)
}

// LoadDir reads supplier exports from a directory, in sorted filename order
// so collision resolution stays deterministic. JSON files may be any of the
// three shapes (detected from the value); xlsx, html and pdf exports always
// load as flat record lists. Unreadable files are skipped.
func LoadDir(dir string) []internal.Supplier {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	out := make([]internal.Supplier, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		sup, ok := loadFile(path)
		if !ok {
			continue
		}
		out = append(out, sup)
	}
	return out
}

func loadFile(path string) (internal.Supplier, bool) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		blob, err := os.ReadFile(path)
		if err != nil {
			log.Printf("assets: skip %s: %v", path, err)
			return internal.Supplier{}, false
		}
		var data any
		if err := json.Unmarshal(blob, &data); err != nil {
			log.Printf("assets: skip %s: %v", path, err)
			return internal.Supplier{}, false
		}
		return internal.Supplier{Name: name, Shape: detectShape(data), Data: data}, true
	case ".xlsx":
		records, err := recordsFromXLSX(path)
		if err != nil {
			log.Printf("assets: skip %s: %v", path, err)
			return internal.Supplier{}, false
		}
		return flatSupplier(name, records), true
	case ".html", ".htm":
		blob, err := os.ReadFile(path)
		if err != nil {
			log.Printf("assets: skip %s: %v", path, err)
			return internal.Supplier{}, false
		}
		records, err := recordsFromHTML(blob)
		if err != nil {
			log.Printf("assets: skip %s: %v", path, err)
			return internal.Supplier{}, false
		}
		return flatSupplier(name, records), true
	case ".pdf":
		records, err := recordsFromPDF(path)
		if err != nil {
			log.Printf("assets: skip %s: %v", path, err)
			return internal.Supplier{}, false
		}
		return flatSupplier(name, records), true
	default:
		return internal.Supplier{}, false
	}
}

func flatSupplier(name string, records []internal.Record) internal.Supplier {
	items := make([]any, 0, len(records))
	for _, rec := range records {
		items = append(items, map[string]any(rec))
	}
	return internal.Supplier{Name: name, Shape: internal.ShapeFlat, Data: items}
}

// detectShape tags a JSON asset: an object with sections is sectioned, an
// array whose entries carry variants is grouped, anything else is flat.
func detectShape(data any) internal.SourceShape {
	switch v := data.(type) {
	case map[string]any:
		return internal.ShapeSectioned
	case []any:
		for _, entry := range v {
			if m, ok := entry.(map[string]any); ok {
				if _, has := m["variants"]; has {
					return internal.ShapeGrouped
				}
			}
		}
		return internal.ShapeFlat
	default:
		return internal.ShapeFlat
	}
}
