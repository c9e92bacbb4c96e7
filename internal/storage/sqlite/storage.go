// Package sqlite persists collections in a local SQLite file, one JSON blob
// per collection. It is the file-backed equivalent of the browser storage
// the dashboard originally used.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/storage"
)

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// Collection names
const (
	collectionPlayers   = "players"
	collectionPayments  = "payments"
	collectionLocations = "locations"
	collectionRoles     = "roles"
)

// migrations returns the schema statements, executed one at a time
func migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE TABLE IF NOT EXISTS sequences (
			name  TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0
		)`,
	}
}

// New opens (creating if necessary) the SQLite database at path
func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// The driver is in-process; a single connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	for _, stmt := range migrations() {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply sqlite schema: %w", err)
		}
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// loadCollection reads and unmarshals a collection blob into out. A missing
// row or corrupt blob leaves out as the empty collection.
func (s *Storage) loadCollection(ctx context.Context, name string, out any) error {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, name).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt blob: fall back to the empty collection
		return nil
	}
	return nil
}

func (s *Storage) saveCollection(ctx context.Context, name string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, data)
	return err
}

func (s *Storage) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	players := []model.Player{}
	if err := s.loadCollection(ctx, collectionPlayers, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *Storage) SavePlayers(ctx context.Context, players []model.Player) error {
	return s.saveCollection(ctx, collectionPlayers, players)
}

func (s *Storage) LoadPayments(ctx context.Context) ([]model.Payment, error) {
	payments := []model.Payment{}
	if err := s.loadCollection(ctx, collectionPayments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Storage) SavePayments(ctx context.Context, payments []model.Payment) error {
	return s.saveCollection(ctx, collectionPayments, payments)
}

func (s *Storage) LoadLocations(ctx context.Context) ([]model.Location, error) {
	locations := []model.Location{}
	if err := s.loadCollection(ctx, collectionLocations, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *Storage) SaveLocations(ctx context.Context, locations []model.Location) error {
	return s.saveCollection(ctx, collectionLocations, locations)
}

func (s *Storage) LoadRoles(ctx context.Context) ([]model.Role, error) {
	roles := []model.Role{}
	if err := s.loadCollection(ctx, collectionRoles, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *Storage) SaveRoles(ctx context.Context, roles []model.Role) error {
	return s.saveCollection(ctx, collectionRoles, roles)
}

func (s *Storage) NextKiliSequence(ctx context.Context) (int, error) {
	var value int
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO sequences (name, value) VALUES ('kili', 1)
		 ON CONFLICT(name) DO UPDATE SET value = value + 1
		 RETURNING value`).Scan(&value)
	if err != nil {
		return 0, err
	}
	return value, nil
}
