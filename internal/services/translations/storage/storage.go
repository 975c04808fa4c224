// Package storage defines persistence contracts for translation overrides.
//
// Overrides are editor-supplied replacements layered over the embedded
// catalog values at read time.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested override record is missing.
var ErrNotFound = errors.New("record not found")

// Override stores one replacement value for a message key in one locale.
type Override struct {
	Locale    string
	Key       string
	Value     string
	UpdatedBy string
	UpdatedAt time.Time
}

// OverrideStore persists translation override records.
type OverrideStore interface {
	UpsertOverride(ctx context.Context, override Override) error
	GetOverride(ctx context.Context, locale string, key string) (Override, error)
	DeleteOverride(ctx context.Context, locale string, key string) error
	ListOverrides(ctx context.Context, locale string) ([]Override, error)
	Close() error
}
