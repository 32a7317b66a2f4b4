// Package settings persists the client settings a user enters at login: the
// rc daemon address and the encoded credentials.
package settings

import (
	"database/sql"
	"embed"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rcwebui/pkg/rclone"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Well known keys.
const (
	KeyIPAddress = "ipAddress"
	KeyAuthKey   = "authKey"
)

// ErrNotConfigured means no daemon address has been stored yet.
var ErrNotConfigured = fmt.Errorf("settings: %w", rclone.ErrNoEndpoint)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_journal_mode=WAL&_timeout=5000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// Get returns the value stored under key, or "" when the key is unset.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}

// All returns every stored setting.
func (s *Store) All() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	all := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		all[key] = value
	}
	return all, rows.Err()
}

// SaveLogin stores the daemon address and credentials in one transaction.
func (s *Store) SaveLogin(ipAddress, authKey string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	for key, value := range map[string]string{KeyIPAddress: ipAddress, KeyAuthKey: authKey} {
		if _, err := tx.Exec(query, key, value); err != nil {
			return fmt.Errorf("failed to set setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit login: %w", err)
	}

	slog.Info("rc login saved", "ip_address", ipAddress)
	return nil
}

// ClearLogin removes the stored address and credentials.
func (s *Store) ClearLogin() error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key IN (?, ?)", KeyIPAddress, KeyAuthKey); err != nil {
		return fmt.Errorf("failed to clear login: %w", err)
	}
	return nil
}

// RCEndpoint implements rclone.EndpointSource. The values are read from the
// database on every call.
func (s *Store) RCEndpoint() (rclone.Endpoint, error) {
	ipAddress, err := s.Get(KeyIPAddress)
	if err != nil {
		return rclone.Endpoint{}, err
	}
	if ipAddress == "" {
		return rclone.Endpoint{}, ErrNotConfigured
	}

	authKey, err := s.Get(KeyAuthKey)
	if err != nil {
		return rclone.Endpoint{}, err
	}

	return rclone.Endpoint{URL: ipAddress, AuthKey: authKey}, nil
}

// EncodeAuthKey produces the token stored under KeyAuthKey.
func EncodeAuthKey(user, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
}
