package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"labkart/internal"
)

// DB is the catalog snapshot store: a sqlite copy of the unified catalog
// with its slug aliases, written for offline inspection and diffing. The
// resolution index never reads from it; the in-memory build is the only
// source of truth.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  supplier TEXT NOT NULL,
  brand TEXT,
  name TEXT,
  pack TEXT,
  code TEXT,
  hsn TEXT,
  cas TEXT,
  price_json TEXT,
  slug TEXT NOT NULL,
  raw_json TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_slug ON products(slug);
CREATE INDEX IF NOT EXISTS idx_products_code ON products(code);
CREATE INDEX IF NOT EXISTS idx_products_supplier ON products(supplier);

CREATE TABLE IF NOT EXISTS aliases (
  slug TEXT PRIMARY KEY,
  productId INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(productId) REFERENCES products(id)
);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// SnapshotEntry is one row plus the identifiers it resolves under.
type SnapshotEntry struct {
	Row       internal.Row
	Canonical string
	Aliases   []string
}

// WriteSnapshot replaces the snapshot with the given catalog. Alias rows
// are inserted first-wins, mirroring the in-memory collision policy.
func (d *DB) WriteSnapshot(entries []SnapshotEntry) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM aliases`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		return err
	}

	productStmt, err := tx.Prepare(`
INSERT INTO products (supplier, brand, name, pack, code, hsn, cas, price_json, slug, raw_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer productStmt.Close()

	aliasStmt, err := tx.Prepare(`INSERT OR IGNORE INTO aliases (slug, productId) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer aliasStmt.Close()

	for _, entry := range entries {
		row := entry.Row
		priceJSON, _ := json.Marshal(row.Price)
		rawJSON, _ := json.Marshal(row.Raw)
		res, err := productStmt.Exec(
			row.Supplier, row.Brand, row.Name, row.Pack, row.Code, row.HSN, row.CAS,
			string(priceJSON), entry.Canonical, string(rawJSON),
		)
		if err != nil {
			return err
		}
		productID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, alias := range entry.Aliases {
			if _, err := aliasStmt.Exec(alias, productID); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// SnapshotRow is the flattened read-back shape.
type SnapshotRow struct {
	ID       int
	Supplier string
	Brand    string
	Name     string
	Pack     string
	Code     string
	HSN      string
	CAS      string
	Price    any
	Slug     string
}

func (d *DB) ListSnapshot() ([]SnapshotRow, error) {
	rows, err := d.conn.Query(`
SELECT id, supplier, brand, name, pack, code, hsn, cas, price_json, slug
FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotRow
	for rows.Next() {
		var row SnapshotRow
		var priceJSON string
		if err := rows.Scan(
			&row.ID, &row.Supplier, &row.Brand, &row.Name, &row.Pack, &row.Code,
			&row.HSN, &row.CAS, &priceJSON, &row.Slug,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(priceJSON), &row.Price)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) CountAliases() (int, error) {
	var count int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM aliases`).Scan(&count)
	return count, err
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
