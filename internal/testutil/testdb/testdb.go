// Package testdb opens a migrated in-memory SQLite database for tests.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	dbinfra "peerlend-backend/internal/infrastructure/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a private shared-cache memory DB named after the test. The
// pool is pinned to one connection: every ":memory:" connection is its own
// database, and SQLite serialises writers anyway.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbinfra.Migrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
