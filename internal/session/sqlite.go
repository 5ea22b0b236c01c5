// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/engagement-pulse/internal/config"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/migrations"
	"github.com/MKhiriev/engagement-pulse/models"
)

const (
	sessionTable = "session"
	memoryDSN    = ":memory:"
)

// Low-level database errors, wrapped with the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRows         = errors.New("failed to scan session rows")
	ErrDecodingUser         = errors.New("failed to decode stored user profile")
)

// SQLiteStore is a Store backed by a SQLite key/value table. It survives
// process restarts unless opened with the ":memory:" DSN.
type SQLiteStore struct {
	db     *sql.DB
	sb     sq.StatementBuilderType
	logger *logger.Logger
}

// NewSQLiteStore opens (creating if needed) the database named by cfg.DSN,
// applies migrations and returns the store.
func NewSQLiteStore(ctx context.Context, cfg config.ClientSession, log *logger.Logger) (*SQLiteStore, error) {
	if cfg.DSN != memoryDSN {
		if err := createLocalDBDirIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewSQLiteStore").Msg("error creating database directory")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// a second connection would see a different in-memory database
	if cfg.DSN == memoryDSN {
		conn.SetMaxOpenConns(1)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error migrating session database")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteStore").Str("dsn", cfg.DSN).Msg("session database ready")

	return newSQLiteStore(conn, log), nil
}

func newSQLiteStore(db *sql.DB, log *logger.Logger) *SQLiteStore {
	return &SQLiteStore{
		db:     db,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger: log,
	}
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.sb.
		Select("key", "value").
		From(sessionTable).
		Where(sq.Eq{"key": []string{KeyToken, KeyUser}}).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "SQLiteStore.Get").Msg("failed to query session")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, 2)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", "SQLiteStore.Get").Msg("failed to scan session row")
			return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	token := values[KeyToken]
	if token == "" {
		return models.Credential{}, ErrNotFound
	}

	cred := models.Credential{Token: token}
	if raw, ok := values[KeyUser]; ok && raw != "" {
		if err = json.Unmarshal([]byte(raw), &cred.User); err != nil {
			return models.Credential{}, fmt.Errorf("%w: %w", ErrDecodingUser, err)
		}
	}

	return cred, nil
}

// Set replaces the stored token and user in one transaction.
func (s *SQLiteStore) Set(ctx context.Context, cred models.Credential) error {
	if !cred.IsAuthenticated() {
		return ErrEmptyToken
	}

	user, err := json.Marshal(cred.User)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}

	query, args, err := s.sb.
		Replace(sessionTable).
		Columns("key", "value").
		Values(KeyToken, cred.Token).
		Values(KeyUser, string(user)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.inTx(ctx, "SQLiteStore.Set", query, args)
}

// Clear removes the token and the user in one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	query, args, err := s.sb.
		Delete(sessionTable).
		Where(sq.Eq{"key": []string{KeyToken, KeyUser}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.inTx(ctx, "SQLiteStore.Clear", query, args)
}

func (s *SQLiteStore) inTx(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		_ = tx.Rollback()
		log.Err(err).Str("func", fn).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func createLocalDBDirIfNotExists(dsn string) error {
	dir := filepath.Dir(dsn)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}
	return nil
}
