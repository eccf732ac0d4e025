package tabstore

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/haresh143heri/Ebasket-Return-App/internal/model"
)

//go:embed schema.sql
var schemaFS embed.FS

// SQLiteStore persists tabs in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at dbPath and ensures
// the schema and managed tabs exist.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite works best over a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	for _, tab := range Tabs {
		if err := s.CreateIfMissing(tab); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// CreateIfMissing is a no-op for SQLite beyond schema setup: a tab exists
// as soon as the schema does. Unknown tab names are rejected.
func (s *SQLiteStore) CreateIfMissing(tab string) error {
	if !KnownTab(tab) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	return nil
}

// ReadAll loads the tab's header and every row, in insertion order.
func (s *SQLiteStore) ReadAll(tab string) (*model.Table, error) {
	if !KnownTab(tab) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}

	t := &model.Table{}

	var rawHeader string
	err := s.db.QueryRow("SELECT header FROM tab_headers WHERE tab = ?", tab).Scan(&rawHeader)
	switch {
	case err == sql.ErrNoRows:
		return t, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read header for %s: %w", tab, err)
	}
	if err := json.Unmarshal([]byte(rawHeader), &t.Header); err != nil {
		return nil, fmt.Errorf("corrupt header for %s: %w", tab, err)
	}

	rows, err := s.db.Query("SELECT data FROM tab_rows WHERE tab = ? ORDER BY id", tab)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows for %s: %w", tab, err)
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan row for %s: %w", tab, err)
		}
		var row []string
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			return nil, fmt.Errorf("corrupt row for %s: %w", tab, err)
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows for %s: %w", tab, err)
	}
	return t, nil
}

// AppendHeaderIfEmpty writes the header only when the tab has none yet.
func (s *SQLiteStore) AppendHeaderIfEmpty(tab string, header []string) error {
	if !KnownTab(tab) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	raw, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO tab_headers (tab, header) VALUES (?, ?) ON CONFLICT(tab) DO NOTHING",
		tab, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write header for %s: %w", tab, err)
	}
	return nil
}

// AppendRows appends rows inside one transaction, teacher-style batch
// insert with a prepared statement.
func (s *SQLiteStore) AppendRows(tab string, rows [][]string) error {
	if !KnownTab(tab) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO tab_rows (tab, data) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		raw, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
		if _, err := stmt.Exec(tab, string(raw)); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// OverwriteAll replaces the tab wholesale: clear, then write header and rows.
func (s *SQLiteStore) OverwriteAll(tab string, header []string, rows [][]string) error {
	if !KnownTab(tab) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tab_rows WHERE tab = ?", tab); err != nil {
		return fmt.Errorf("failed to clear rows for %s: %w", tab, err)
	}
	if _, err := tx.Exec("DELETE FROM tab_headers WHERE tab = ?", tab); err != nil {
		return fmt.Errorf("failed to clear header for %s: %w", tab, err)
	}

	if header != nil {
		raw, err := json.Marshal(header)
		if err != nil {
			return fmt.Errorf("failed to encode header: %w", err)
		}
		if _, err := tx.Exec("INSERT INTO tab_headers (tab, header) VALUES (?, ?)", tab, string(raw)); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", tab, err)
		}

		stmt, err := tx.Prepare("INSERT INTO tab_rows (tab, data) VALUES (?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()
		for _, row := range rows {
			rawRow, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("failed to encode row: %w", err)
			}
			if _, err := stmt.Exec(tab, string(rawRow)); err != nil {
				return fmt.Errorf("failed to insert row: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
