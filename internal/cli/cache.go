package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS index_entries (
    series_id   TEXT NOT NULL,
    month       TEXT NOT NULL,
    value       REAL NOT NULL,
    synced_at   TEXT NOT NULL,
    PRIMARY KEY (series_id, month)
);
`

// Cache is the local copy of inflation series data. It lets schedule and next
// run offline between syncs.
type Cache struct {
	db *sql.DB
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "propflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "propflow")
}

// CachePath returns the full path to the series cache database.
func CachePath() string {
	return filepath.Join(DataDir(), "index.db")
}

// OpenCache opens or creates the cache database at the given path.
func OpenCache(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveEntries replaces the cached history for a series. The INDEC API always
// returns the full history, so a full replace keeps revised months correct.
func (c *Cache) SaveEntries(seriesID string, entries []services.IndexEntry) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM index_entries WHERE series_id = ?", seriesID); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, entry := range entries {
		_, err := tx.Exec(`INSERT OR REPLACE INTO index_entries (series_id, month, value, synced_at)
			VALUES (?, ?, ?, ?)`,
			seriesID, entry.Month.Format("2006-01-02"), entry.Value, now,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadEntries reads the cached history for a series, oldest month first.
func (c *Cache) LoadEntries(seriesID string) ([]services.IndexEntry, error) {
	rows, err := c.db.Query(
		"SELECT month, value FROM index_entries WHERE series_id = ? ORDER BY month",
		seriesID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	entries := []services.IndexEntry{}
	for rows.Next() {
		var monthStr string
		var value float64
		if err := rows.Scan(&monthStr, &value); err != nil {
			return nil, err
		}
		month, err := time.Parse("2006-01-02", monthStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt cache month %q: %w", monthStr, err)
		}
		entries = append(entries, services.IndexEntry{Month: month, Value: value})
	}
	return entries, rows.Err()
}

// LatestEntry returns the most recent cached month for a series. The second
// return value is false when the series has no cached data.
func (c *Cache) LatestEntry(seriesID string) (services.IndexEntry, bool, error) {
	row := c.db.QueryRow(
		"SELECT month, value FROM index_entries WHERE series_id = ? ORDER BY month DESC LIMIT 1",
		seriesID,
	)

	var monthStr string
	var value float64
	if err := row.Scan(&monthStr, &value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return services.IndexEntry{}, false, nil
		}
		return services.IndexEntry{}, false, err
	}

	month, err := time.Parse("2006-01-02", monthStr)
	if err != nil {
		return services.IndexEntry{}, false, fmt.Errorf("corrupt cache month %q: %w", monthStr, err)
	}
	return services.IndexEntry{Month: month, Value: value}, true, nil
}
