// Package testdb opens throwaway SQLite databases for tests.
package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/helixml/periodic/infrastructure/persistence"
	"github.com/helixml/periodic/internal/database"
)

// New opens a database with all five tables created. It is closed when
// the test finishes.
func New(t *testing.T) database.Database {
	t.Helper()
	db := NewPlain(t)
	if err := persistence.AutoMigrate(db); err != nil {
		t.Fatalf("testdb: create tables: %v", err)
	}
	return db
}

// NewPlain opens an empty database, for tests that create the tables
// themselves. The file lives in the test's temp directory so every pooled
// connection sees the same data, with foreign keys enforced.
func NewPlain(t *testing.T) database.Database {
	t.Helper()
	url := "sqlite:///" + filepath.Join(t.TempDir(), "periodic.db")
	db, err := database.NewDatabase(context.Background(), url)
	if err != nil {
		t.Fatalf("testdb: open %s: %v", url, err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
