// Package dbtest opens a migrated in-memory SQLite database for tests.
package dbtest

import (
	"testing"

	"vidcall_server/internal/dao/mysql"
	"vidcall_server/internal/dao/mysql/repository"
	"vidcall_server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a fresh schema that lives until the test ends.
// One connection only: every ":memory:" connection would be its own database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := mysql.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Repos is Open wrapped in the repository aggregate.
func Repos(t testing.TB) (*repository.Repositories, *gorm.DB) {
	db := Open(t)
	return repository.NewRepositories(db), db
}

// SeedProfile inserts a profile with the given id and username.
func SeedProfile(t testing.TB, db *gorm.DB, id, username string) *model.Profile {
	t.Helper()
	p := &model.Profile{ID: id, Username: username, Password: "x", Status: model.StatusOffline}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed profile %s: %v", username, err)
	}
	return p
}
