package sqlitemigrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func TestApplyRunsMigrationsInOrder(t *testing.T) {
	sqlDB := openTestDB(t)
	migrationFS := fstest.MapFS{
		"0001_create.sql": {Data: []byte(`CREATE TABLE things (id INTEGER PRIMARY KEY, name TEXT NOT NULL);`)},
		"0002_seed.sql":   {Data: []byte(`INSERT INTO things (name) VALUES ('first');`)},
		"README.md":       {Data: []byte("not a migration")},
	}

	if err := Apply(context.Background(), sqlDB, migrationFS); err != nil {
		t.Fatalf("apply: %v", err)
	}

	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(1) FROM things").Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	sqlDB := openTestDB(t)
	migrationFS := fstest.MapFS{
		"0001_create.sql": {Data: []byte(`CREATE TABLE things (id INTEGER PRIMARY KEY);`)},
		"0002_seed.sql":   {Data: []byte(`INSERT INTO things DEFAULT VALUES;`)},
	}

	for i := 0; i < 3; i++ {
		if err := Apply(context.Background(), sqlDB, migrationFS); err != nil {
			t.Fatalf("apply #%d: %v", i+1, err)
		}
	}

	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(1) FROM things").Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1 (seed must run once)", count)
	}
}

func TestApplyRejectsNilDB(t *testing.T) {
	t.Parallel()

	if err := Apply(context.Background(), nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error")
	}
}
