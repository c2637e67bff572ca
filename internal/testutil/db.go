// Package testutil provides shared helpers for tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"murmur/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// OpenTestDB opens a fresh in-memory SQLite database with the full schema
// migrated and foreign key enforcement enabled. Referential actions (cascade,
// SET NULL) behave as in production, so relational-semantics tests run
// against a real store.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A unique name per test keeps shared-cache in-memory databases isolated
	// from each other within the process.
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection so the foreign_keys pragma applies to every query.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
