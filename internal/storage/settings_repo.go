package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_settings_store.go -package=mocks scripturesketch/internal/storage SettingsStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// SettingsStore defines the interface for persisted process-wide flags.
type SettingsStore interface {
	// Bool returns the flag stored under key. A missing key reads as false.
	Bool(ctx context.Context, key string) (bool, error)
	// SetBool stores the flag under key, replacing any previous value.
	SetBool(ctx context.Context, key string, value bool) error
}

// SettingsRepo stores key/value settings in the settings table.
// It implements the SettingsStore interface.
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Bool returns the boolean stored under key, or false if the key is unset.
func (r *SettingsRepo) Bool(ctx context.Context, key string) (bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query setting %s: %w", key, err)
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("setting %s is not a boolean: %w", key, err)
	}
	return b, nil
}

// SetBool upserts the boolean stored under key.
func (r *SettingsRepo) SetBool(ctx context.Context, key string, value bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, strconv.FormatBool(value),
	)
	if err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}
	return nil
}
