// Package testutil builds throwaway stores and fakes for package tests.
package testutil

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/barber-admin/internal/db"
	"github.com/BruksfildServices01/barber-admin/internal/models"
)

const (
	AdminEmail    = "admin@barber.com"
	AdminPassword = "admin123"
)

// NewDB returns a migrated in-memory sqlite store with foreign keys on.
// A single connection keeps every query on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// NewProvisionedDB also seeds the admin user, the barbershop and its
// seven operating-hours rows.
func NewProvisionedDB(t *testing.T) (*gorm.DB, *models.Barbershop) {
	t.Helper()

	db := NewDB(t)

	in := dbpkg.DefaultProvisionInput()
	in.AdminEmail = AdminEmail
	in.AdminPassword = AdminPassword
	if err := dbpkg.Provision(context.Background(), db, in); err != nil {
		t.Fatalf("provision: %v", err)
	}

	var shop models.Barbershop
	if err := db.First(&shop).Error; err != nil {
		t.Fatalf("load barbershop: %v", err)
	}
	return db, &shop
}

// Count returns the number of rows of model matching an optional condition.
func Count(t *testing.T, db *gorm.DB, model any, where ...any) int64 {
	t.Helper()

	q := db.Model(model)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
