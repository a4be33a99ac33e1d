package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database scoped to the test. The DSN is
// named after the test so parallel tests never share state, and cache=shared
// keeps gorm's connection pool on one database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Administrator{},
		&model.Assistant{},
		&model.Supervisor{},
		&model.Faculty{},
		&model.Career{},
		&model.Position{},
		&model.AssistantType{},
		&model.Assistantship{},
		&model.Period{},
		&model.Activity{},
		&model.Approval{},
		&model.ApprovalWindow{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
