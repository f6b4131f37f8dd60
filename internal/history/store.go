package history

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

const retentionDays = 90

// Store manages copied-command history persistence
type Store struct {
	db    *sql.DB
	limit int
}

// NewStore opens the history database in the XDG data directory
func NewStore(limit int) (*Store, error) {
	dbPath, err := xdg.DataFile("ezscaffold/history.db")
	if err != nil {
		return nil, err
	}
	return NewStoreAt(dbPath, limit)
}

// NewStoreAt opens (or creates) a history database at path. A limit of zero
// or less keeps every entry inside the retention window.
func NewStoreAt(path string, limit int) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tool TEXT NOT NULL,
			command TEXT NOT NULL,
			preset TEXT NOT NULL DEFAULT '',
			copied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_history_copied_at ON history(copied_at);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := &Store{db: db, limit: limit}
	if err := store.cleanup(); err != nil {
		log.Printf("history: cleanup failed: %v", err)
	}
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a copied command
func (s *Store) Add(entry *Entry) error {
	if entry.CopiedAt.IsZero() {
		entry.CopiedAt = time.Now()
	}

	res, err := s.db.Exec(`
		INSERT INTO history (tool, command, preset, copied_at)
		VALUES (?, ?, ?, ?)
	`, entry.Tool, entry.Command, entry.Preset, entry.CopiedAt.UTC())
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id

	if err := s.cleanup(); err != nil {
		log.Printf("history: cleanup failed: %v", err)
	}
	return nil
}

// List returns paginated history entries, newest first
func (s *Store) List(limit, offset int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, tool, command, preset, copied_at
		FROM history
		ORDER BY copied_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search finds history entries by command substring
func (s *Store) Search(substr string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, tool, command, preset, copied_at
		FROM history
		WHERE command LIKE ?
		ORDER BY copied_at DESC, id DESC
		LIMIT ?
	`, "%"+substr+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Tool, &e.Command, &e.Preset, &e.CopiedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID retrieves a single history entry, nil if it does not exist
func (s *Store) GetByID(id int64) (*Entry, error) {
	var e Entry
	err := s.db.QueryRow(`
		SELECT id, tool, command, preset, copied_at
		FROM history WHERE id = ?
	`, id).Scan(&e.ID, &e.Tool, &e.Command, &e.Preset, &e.CopiedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes a history entry by ID
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM history WHERE id = ?", id)
	return err
}

// Count returns the total number of history entries
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM history").Scan(&count)
	return count, err
}

// cleanup drops entries past the retention window and beyond the size limit
func (s *Store) cleanup() error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays).UTC()
	if _, err := s.db.Exec("DELETE FROM history WHERE copied_at < ?", cutoff); err != nil {
		return err
	}
	if s.limit <= 0 {
		return nil
	}
	_, err := s.db.Exec(`
		DELETE FROM history
		WHERE id NOT IN (
			SELECT id FROM history
			ORDER BY copied_at DESC, id DESC
			LIMIT ?
		)
	`, s.limit)
	return err
}
