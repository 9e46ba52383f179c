package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"labkart/internal/catalog"
	"labkart/internal/config"
	"labkart/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	resolver := catalog.Default()

	cmd := os.Args[1]
	switch cmd {
	case "resolve":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		id := fs.String("id", "", "slug or supplier code")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*id) == "" {
			must(fmt.Errorf("--id is required"))
		}
		report := resolver.Report(*id)
		blob, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(blob))
		if !report.Found {
			os.Exit(2)
		}
	case "slugs":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		id := fs.String("id", "", "slug or supplier code")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*id) == "" {
			must(fmt.Errorf("--id is required"))
		}
		row, ok := resolver.Lookup(*id)
		if !ok {
			must(fmt.Errorf("no product for %q", *id))
		}
		for _, slug := range catalog.CandidateSlugs(*row) {
			fmt.Println(slug)
		}
	case "list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		supplier := fs.String("supplier", "", "restrict to one supplier")
		_ = fs.Parse(os.Args[2:])
		count := 0
		for _, row := range resolver.Rows() {
			if *supplier != "" && row.Supplier != *supplier {
				continue
			}
			count++
			fmt.Printf("%-10s %-40s %-14s %s\n", row.Supplier, truncate(row.Name, 40), row.Code, catalog.PrimarySlug(row))
		}
		fmt.Printf("total: %d\n", count)
	case "snapshot:sqlite":
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		rows := resolver.Rows()
		entries := make([]storage.SnapshotEntry, 0, len(rows))
		for _, row := range rows {
			candidates := catalog.CandidateSlugs(row)
			canonical := ""
			if len(candidates) > 0 {
				canonical = candidates[0]
			}
			entries = append(entries, storage.SnapshotEntry{Row: row, Canonical: canonical, Aliases: candidates})
		}
		must(db.WriteSnapshot(entries))
		_ = db.SetMetadata("catalog.last_snapshot", time.Now().UTC().Format(time.RFC3339))
		fmt.Printf("snapshot written: %d products to %s\n", len(entries), cfg.DBPath)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		path := *out
		if strings.TrimSpace(path) == "" {
			path = filepath.Join(cfg.OutputDir, "catalog.xlsx")
		}
		rows := resolver.Rows()
		must(catalog.ExportRowsToXLSX(rows, path))
		fmt.Printf("exported %d rows to %s\n", len(rows), path)
	default:
		usage()
		os.Exit(1)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func usage() {
	fmt.Println("usage: labkart <command>")
	fmt.Println("commands:")
	fmt.Println("  resolve --id=<slug-or-code>")
	fmt.Println("  slugs --id=<slug-or-code>")
	fmt.Println("  list [--supplier=<name>]")
	fmt.Println("  snapshot:sqlite")
	fmt.Println("  export:xlsx [--out=./out/catalog.xlsx]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
