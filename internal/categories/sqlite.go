package categories

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend persists the mapping in a local SQLite database. Selected
// via the storage backend setting in finboard.yaml.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (creating if needed) the database at dbPath.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS vendor_categories (
		vendor   TEXT PRIMARY KEY,
		category TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating vendor_categories table: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Close releases the database handle.
func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// Load reads all vendor→category rows.
func (b *SQLiteBackend) Load() (map[string]string, error) {
	rows, err := b.db.Query(`SELECT vendor, category FROM vendor_categories`)
	if err != nil {
		return nil, fmt.Errorf("querying vendor categories: %w", err)
	}
	defer rows.Close()

	mapping := map[string]string{}
	for rows.Next() {
		var vendor, category string
		if err := rows.Scan(&vendor, &category); err != nil {
			return nil, fmt.Errorf("scanning vendor category: %w", err)
		}
		mapping[vendor] = category
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading vendor categories: %w", err)
	}
	return mapping, nil
}

// Save replaces the stored mapping with the given one, atomically. The
// whole-slot overwrite matches the file backend's semantics.
func (b *SQLiteBackend) Save(mapping map[string]string) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vendor_categories`); err != nil {
		return fmt.Errorf("clearing vendor categories: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO vendor_categories (vendor, category) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for vendor, category := range mapping {
		if _, err := stmt.Exec(vendor, category); err != nil {
			return fmt.Errorf("inserting vendor %q: %w", vendor, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing vendor categories: %w", err)
	}
	return nil
}
