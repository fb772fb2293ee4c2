package database

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/proplens/proplens/data"
	"github.com/proplens/proplens/internal/models"
	"gorm.io/gorm"
)

// SeedTutorials loads the embedded starter tutorials when the tutorials
// table is empty. Tutorials have no user-facing mutation path, so this is
// the only way content enters a fresh database.
func SeedTutorials(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Tutorial{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count tutorials: %w", err)
	}
	if count > 0 {
		return nil
	}

	var tutorials []models.Tutorial
	if err := json.Unmarshal(data.SeedTutorials, &tutorials); err != nil {
		return fmt.Errorf("failed to parse embedded tutorials: %w", err)
	}

	if err := db.Create(&tutorials).Error; err != nil {
		return fmt.Errorf("failed to seed tutorials: %w", err)
	}

	log.Printf("Seeded %d tutorials", len(tutorials))
	return nil
}
