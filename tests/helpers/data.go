package helpers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/proplens/proplens/internal/models"
	"gorm.io/gorm"
)

// CreateTestUser creates a user with the given role and returns its id
func CreateTestUser(t *testing.T, db *gorm.DB, role models.UserRole) string {
	t.Helper()
	id := uuid.New().String()
	email := id + "@example.com"
	user := models.User{
		ID:    id,
		Email: &email,
		Role:  role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return id
}

// CreateTestProperty creates a listing owned by agentID with sane defaults,
// modified by the given mutators
func CreateTestProperty(t *testing.T, db *gorm.DB, agentID string, mutate ...func(*models.Property)) *models.Property {
	t.Helper()
	property := models.Property{
		Title:        "Test Property",
		Description:  "A property for testing",
		Price:        250000,
		Address:      "123 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		Bedrooms:     3,
		Bathrooms:    2,
		PropertyType: models.TypeSingleFamily,
		Status:       models.StatusForSale,
		AgentID:      &agentID,
	}
	for _, m := range mutate {
		m(&property)
	}
	if err := db.Create(&property).Error; err != nil {
		t.Fatalf("Failed to create property: %v", err)
	}
	return &property
}

// CreateTestTutorial creates a catalog entry and returns it
func CreateTestTutorial(t *testing.T, db *gorm.DB, title, category string, difficulty models.TutorialDifficulty) *models.Tutorial {
	t.Helper()
	tutorial := models.Tutorial{
		Title:      title,
		Category:   category,
		Difficulty: difficulty,
		Duration:   15,
	}
	if err := db.Create(&tutorial).Error; err != nil {
		t.Fatalf("Failed to create tutorial: %v", err)
	}
	return &tutorial
}

// CreateTestMetric records an analytics observation at the given date
func CreateTestMetric(t *testing.T, db *gorm.DB, userID, name string, value float64, date time.Time) {
	t.Helper()
	record := models.AnalyticsRecord{
		UserID:      userID,
		MetricName:  name,
		MetricValue: value,
		MetricDate:  date,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("Failed to create analytics record: %v", err)
	}
}
