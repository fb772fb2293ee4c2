package services

import (
	"errors"
	"time"

	"github.com/proplens/proplens/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultTutorialPageSize caps tutorial listings when the caller omits a limit.
const DefaultTutorialPageSize = 20

// TutorialFilter narrows the tutorial catalog. Nil fields are omitted
// predicates.
type TutorialFilter struct {
	Category   *string
	Difficulty *string
	Limit      int
	Offset     int
}

// ListTutorials returns catalog entries matching every present filter
// field, newest first.
func ListTutorials(db *gorm.DB, filter TutorialFilter) ([]models.Tutorial, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultTutorialPageSize
	}

	var conds []clause.Expression
	if filter.Category != nil {
		conds = append(conds, clause.Eq{Column: clause.Column{Name: "category"}, Value: *filter.Category})
	}
	if filter.Difficulty != nil {
		conds = append(conds, clause.Eq{Column: clause.Column{Name: "difficulty"}, Value: *filter.Difficulty})
	}

	query := db.Model(&models.Tutorial{})
	if len(conds) > 0 {
		query = query.Clauses(clause.Where{Exprs: conds})
	}

	tutorials := make([]models.Tutorial, 0, limit)
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&tutorials).Error
	if err != nil {
		return nil, err
	}
	return tutorials, nil
}

// GetTutorial fetches one tutorial by id.
func GetTutorial(db *gorm.DB, id uint) (*models.Tutorial, error) {
	var tutorial models.Tutorial
	if err := db.First(&tutorial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tutorial, nil
}

// UserTutorialProgress returns a user's progress rows with the tutorial
// preloaded, most recently updated first.
func UserTutorialProgress(db *gorm.DB, userID string) ([]models.TutorialProgress, error) {
	progress := make([]models.TutorialProgress, 0)
	err := db.Preload("Tutorial").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&progress).Error
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// UpsertTutorialProgress records a user's position in a tutorial. One row
// exists per (user, tutorial) pair; repeated reports overwrite the previous
// state in a single statement so concurrent reports cannot duplicate rows.
// CompletedAt is stamped when the report marks the tutorial completed and
// cleared when a later report un-completes it.
func UpsertTutorialProgress(db *gorm.DB, userID string, tutorialID uint, completed bool, progressPercent int) (*models.TutorialProgress, error) {
	if _, err := GetTutorial(db, tutorialID); err != nil {
		return nil, err
	}

	progress := models.TutorialProgress{
		UserID:          userID,
		TutorialID:      tutorialID,
		Completed:       completed,
		ProgressPercent: progressPercent,
	}
	if completed {
		now := time.Now()
		progress.CompletedAt = &now
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "tutorial_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"completed", "progress_percent", "completed_at", "updated_at",
		}),
	}).Create(&progress).Error
	if err != nil {
		return nil, err
	}

	// The conflict path leaves the struct holding the insert attempt's id,
	// so read the surviving row back.
	var saved models.TutorialProgress
	err = db.Where("user_id = ? AND tutorial_id = ?", userID, tutorialID).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
