// Package mysqlite persists overrides in a local SQLite file, one row per client scope.
package mysqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/service"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS module_overrides (
	scope   TEXT PRIMARY KEY,
	payload TEXT NOT NULL
)`

type overrideStore struct {
	db *sql.DB
}

// Open opens (creating when needed) the SQLite database at path and prepares the schema.
// The pool is capped at one connection so writes are serialized.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	return db, nil
}

// NewOverrideStore creates an OverrideStore on top of a database prepared by Open.
func NewOverrideStore(db *sql.DB) *overrideStore {
	return &overrideStore{db: db}
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *overrideStore) Load(ctx context.Context, scope string) (domain.OverrideSet, error) {
	return s.read(ctx, s.db, scope)
}

func (s *overrideStore) Upsert(ctx context.Context, scope string, record domain.ModuleDescriptor) (domain.OverrideSet, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, service.NewInternalServerError("SQLite begin error", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := s.read(ctx, tx, scope)
	if err != nil {
		return nil, err
	}
	current[record.Name] = record.Clone()

	payload, err := json.Marshal(current)
	if err != nil {
		return nil, service.NewInternalServerError("SQLite marshal overrides error", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO module_overrides (scope, payload) VALUES (?, ?)
		 ON CONFLICT(scope) DO UPDATE SET payload = excluded.payload`,
		scope, string(payload))
	if err != nil {
		return nil, service.NewInternalServerError("SQLite write overrides error", fmt.Errorf("can't upsert override %q (scope='%s'), err: %w", record.Name, scope, err))
	}
	if err := tx.Commit(); err != nil {
		return nil, service.NewInternalServerError("SQLite commit error", err)
	}
	return current, nil
}

func (s *overrideStore) Clear(ctx context.Context, scope string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM module_overrides WHERE scope = ?`, scope); err != nil {
		return service.NewInternalServerError("SQLite delete overrides error", fmt.Errorf("can't delete overrides (scope='%s'), err: %w", scope, err))
	}
	return nil
}

// read decodes the row of scope. Absent or corrupt payloads read as an empty set.
func (s *overrideStore) read(ctx context.Context, q querier, scope string) (domain.OverrideSet, error) {
	var payload string
	err := q.QueryRowContext(ctx, `SELECT payload FROM module_overrides WHERE scope = ?`, scope).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.OverrideSet{}, nil
	}
	if err != nil {
		return nil, service.NewInternalServerError("SQLite read overrides error", fmt.Errorf("can't read overrides (scope='%s'), err: %w", scope, err))
	}

	var set domain.OverrideSet
	if err := json.Unmarshal([]byte(payload), &set); err != nil || set == nil {
		return domain.OverrideSet{}, nil
	}
	return set, nil
}
