package kvstore

import (
	"context"
	"database/sql"
	stderrors "errors"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/spellbook/internal/errors"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteStore keeps every key in a single kv table
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens or creates a SQLite database file
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create kv table")
	}
	return &SQLiteStore{db: db}, nil
}

// Get reads one row
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkContext(ctx, "sqlite", "get"); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("key %s not found", key)
		}
		return nil, errors.Wrapf(err, "failed to get key %s", key)
	}
	return value, nil
}

// Set upserts one row
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	return s.Apply(ctx, []Op{SetOp(key, value)})
}

// Delete removes rows in one transaction
func (s *SQLiteStore) Delete(ctx context.Context, keys ...string) error {
	ops := make([]Op, len(keys))
	for i, key := range keys {
		ops[i] = DeleteOp(key)
	}
	return s.Apply(ctx, ops)
}

// Apply runs the batch inside one SQL transaction
func (s *SQLiteStore) Apply(ctx context.Context, ops []Op) error {
	if err := checkContext(ctx, "sqlite", "apply"); err != nil {
		return err
	}
	if err := validateOps(ops); err != nil {
		return err
	}
	if len(ops) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, op := range ops {
		if op.Kind == OpSet {
			value := op.Value
			if value == nil {
				value = []byte{}
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO kv (key, value) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
				op.Key, value)
		} else {
			_, err = tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, op.Key)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to write key %s", op.Key)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// Close closes the database handle
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
