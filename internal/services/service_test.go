package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/proplens/proplens/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.AnalyticsRecord{},
		&models.Tutorial{},
		&models.TutorialProgress{},
		&models.ChatMessage{},
	)
	require.NoError(t, err)

	return db
}

func createUser(t *testing.T, db *gorm.DB, id string, role models.UserRole) {
	t.Helper()
	email := id + "@example.com"
	require.NoError(t, db.Create(&models.User{ID: id, Email: &email, Role: role}).Error)
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
