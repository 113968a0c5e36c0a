package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/mockview/mockview/internal/client/models"
	"github.com/mockview/mockview/internal/client/session/migrations"
	"github.com/mockview/mockview/internal/filex"
)

const (
	keyToken = "auth_token"
	keyUser  = "user"
)

// SQLiteStore persists the session in a small key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the session database at dsn and applies the
// embedded migrations.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("session db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("session db migration error: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) SaveToken(ctx context.Context, token string) error {
	return s.set(ctx, keyToken, []byte(token))
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	value, err := s.get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *SQLiteStore) SaveUser(ctx context.Context, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.set(ctx, keyUser, payload)
}

// User returns the stored profile. A missing or undecodable value reads as
// absent rather than an error.
func (s *SQLiteStore) User(ctx context.Context) (*models.User, error) {
	value, err := s.get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, nil
	}

	user := &models.User{}
	if err := json.Unmarshal(value, user); err != nil {
		return nil, nil
	}
	return user, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Authenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}
