package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nvalerio/phrasebook/internal/services/translations/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "overrides.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestUpsertAndGetOverride(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := store.UpsertOverride(ctx, storage.Override{
		Locale:    "es",
		Key:       "app.greeting",
		Value:     "¡Buenas!",
		UpdatedBy: "editor-1",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := store.GetOverride(ctx, "es", "app.greeting")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Value != "¡Buenas!" {
		t.Fatalf("value = %q, want %q", got.Value, "¡Buenas!")
	}
	if got.UpdatedBy != "editor-1" {
		t.Fatalf("updated_by = %q, want %q", got.UpdatedBy, "editor-1")
	}
	if got.UpdatedAt.IsZero() {
		t.Fatal("updated_at is zero")
	}
}

func TestUpsertOverrideReplacesValue(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, value := range []string{"first", "second"} {
		err := store.UpsertOverride(ctx, storage.Override{Locale: "es", Key: "app.greeting", Value: value})
		if err != nil {
			t.Fatalf("upsert %q: %v", value, err)
		}
	}

	got, err := store.GetOverride(ctx, "es", "app.greeting")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Value != "second" {
		t.Fatalf("value = %q, want %q", got.Value, "second")
	}

	list, err := store.ListOverrides(ctx, "es")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
}

func TestGetOverrideMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetOverride(context.Background(), "es", "app.unknown")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteOverride(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertOverride(ctx, storage.Override{Locale: "es", Key: "app.farewell", Value: "chau"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.DeleteOverride(ctx, "es", "app.farewell"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteOverride(ctx, "es", "app.farewell"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestListOverridesScopedByLocale(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	seed := []storage.Override{
		{Locale: "es", Key: "app.greeting", Value: "hola"},
		{Locale: "es", Key: "app.farewell", Value: "chau"},
		{Locale: "pt-BR", Key: "app.greeting", Value: "oi"},
	}
	for _, override := range seed {
		if err := store.UpsertOverride(ctx, override); err != nil {
			t.Fatalf("upsert %s/%s: %v", override.Locale, override.Key, err)
		}
	}

	list, err := store.ListOverrides(ctx, "es")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(list) = %d, want 2", len(list))
	}
	if list[0].Key != "app.farewell" || list[1].Key != "app.greeting" {
		t.Fatalf("keys = %q, %q, want sorted by key", list[0].Key, list[1].Key)
	}
}

func TestUpsertOverrideValidatesInput(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertOverride(ctx, storage.Override{Locale: " ", Key: "app.greeting"}); err == nil {
		t.Fatal("expected locale error")
	}
	if err := store.UpsertOverride(ctx, storage.Override{Locale: "es", Key: " "}); err == nil {
		t.Fatal("expected key error")
	}
	if err := store.UpsertOverride(ctx, storage.Override{Locale: "ja", Key: "app.greeting", Value: "x"}); err == nil {
		t.Fatal("expected unsupported locale error")
	}
	if err := store.UpsertOverride(ctx, storage.Override{Locale: "pt-br", Key: "app.greeting", Value: "x"}); err == nil {
		t.Fatal("expected non-canonical locale error")
	}
}
