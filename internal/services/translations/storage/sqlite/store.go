// Package sqlite provides a SQLite-backed override store implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nvalerio/phrasebook/internal/platform/storage/sqlitemigrate"
	"github.com/nvalerio/phrasebook/internal/services/translations/storage"
	"github.com/nvalerio/phrasebook/internal/services/translations/storage/sqlite/migrations"

	platformi18n "github.com/nvalerio/phrasebook/internal/platform/i18n"
)

// Store persists translation overrides in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite override store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// UpsertOverride inserts or replaces one override record.
func (s *Store) UpsertOverride(ctx context.Context, override storage.Override) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	locale := strings.TrimSpace(override.Locale)
	key := strings.TrimSpace(override.Key)
	if locale == "" {
		return fmt.Errorf("locale is required")
	}
	if tag, ok := platformi18n.ParseTag(locale); !ok || platformi18n.LocaleString(tag) != locale {
		return fmt.Errorf("locale %q is not supported", locale)
	}
	if key == "" {
		return fmt.Errorf("key is required")
	}
	updatedAt := override.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO message_overrides (locale, key, value, updated_by, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (locale, key)
		 DO UPDATE SET value = excluded.value,
		               updated_by = excluded.updated_by,
		               updated_at = excluded.updated_at`,
		locale,
		key,
		override.Value,
		strings.TrimSpace(override.UpdatedBy),
		updatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert override: %w", err)
	}
	return nil
}

// GetOverride returns one override record.
func (s *Store) GetOverride(ctx context.Context, locale string, key string) (storage.Override, error) {
	if err := ctx.Err(); err != nil {
		return storage.Override{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Override{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT locale, key, value, updated_by, updated_at
		   FROM message_overrides
		  WHERE locale = ? AND key = ?`,
		strings.TrimSpace(locale),
		strings.TrimSpace(key),
	)
	return scanOverride(row.Scan)
}

// DeleteOverride removes one override record.
func (s *Store) DeleteOverride(ctx context.Context, locale string, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM message_overrides WHERE locale = ? AND key = ?`,
		strings.TrimSpace(locale),
		strings.TrimSpace(key),
	)
	if err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete override rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListOverrides returns all override records for a locale, ordered by key.
func (s *Store) ListOverrides(ctx context.Context, locale string) ([]storage.Override, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT locale, key, value, updated_by, updated_at
		   FROM message_overrides
		  WHERE locale = ?
		  ORDER BY key`,
		strings.TrimSpace(locale),
	)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []storage.Override
	for rows.Next() {
		override, err := scanOverride(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, override)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overrides: %w", err)
	}
	return out, nil
}

func scanOverride(scan func(...any) error) (storage.Override, error) {
	var override storage.Override
	var updatedAt int64
	err := scan(&override.Locale, &override.Key, &override.Value, &override.UpdatedBy, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Override{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Override{}, fmt.Errorf("scan override: %w", err)
	}
	override.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return override, nil
}
