package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists snapshots in a single SQLite table keyed by household name.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and runs migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS household_snapshots (
			name        TEXT PRIMARY KEY,
			id          TEXT NOT NULL,
			saved_at    INTEGER NOT NULL,
			values_json TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// Save upserts the snapshot under its name.
func (s *SQLiteStore) Save(ctx context.Context, snapshot Snapshot) error {
	if err := ValidateName(snapshot.Name); err != nil {
		return err
	}
	values, err := json.Marshal(snapshot.Values)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snapshot.Name, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO household_snapshots (name, id, saved_at, values_json)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			id = excluded.id,
			saved_at = excluded.saved_at,
			values_json = excluded.values_json`,
		snapshot.Name, snapshot.ID, snapshot.SavedAt.UTC().UnixMilli(), string(values))
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", snapshot.Name, err)
	}
	return nil
}

// Load reads the latest snapshot stored under name.
func (s *SQLiteStore) Load(ctx context.Context, name string) (Snapshot, error) {
	if err := ValidateName(name); err != nil {
		return Snapshot{}, err
	}
	var (
		id      string
		savedAt int64
		values  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, saved_at, values_json FROM household_snapshots WHERE name = ?`, name).
		Scan(&id, &savedAt, &values)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot %s: %w", name, err)
	}

	snapshot := Snapshot{ID: id, Name: name, SavedAt: time.UnixMilli(savedAt).UTC()}
	if err := decodeJSON([]byte(values), &snapshot.Values); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: %w", name, err)
	}
	return snapshot, nil
}

// List returns stored household names in order.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM household_snapshots ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan snapshot name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
