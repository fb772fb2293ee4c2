package models

import (
	"time"

	"gorm.io/datatypes"
)

// Tutorial is read-mostly reference content seeded at startup.
type Tutorial struct {
	ID           uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string                      `gorm:"size:255;not null" json:"title"`
	Description  string                      `gorm:"type:text" json:"description"`
	VideoURL     string                      `gorm:"size:500" json:"videoUrl"`
	ThumbnailURL string                      `gorm:"size:500" json:"thumbnailUrl"`
	Difficulty   TutorialDifficulty          `gorm:"type:varchar(20);not null;default:beginner;index" json:"difficulty"`
	Duration     int                         `gorm:"column:duration_minutes;default:0" json:"duration"`
	Category     string                      `gorm:"size:100;not null;index" json:"category"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt    time.Time                   `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// TableName overrides the table name for Tutorial
func (Tutorial) TableName() string {
	return "tutorials"
}

// TutorialProgress tracks one user's progress through one tutorial. The
// (user, tutorial) pair is unique and serves as the conflict target for the
// atomic upsert in the tutorial service.
type TutorialProgress struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          string     `gorm:"size:64;not null;uniqueIndex:idx_user_tutorial" json:"userId"`
	User            *User      `gorm:"foreignKey:UserID" json:"-"`
	TutorialID      uint       `gorm:"not null;uniqueIndex:idx_user_tutorial" json:"tutorialId"`
	Tutorial        *Tutorial  `gorm:"foreignKey:TutorialID" json:"tutorial,omitempty"`
	Completed       bool       `gorm:"default:false" json:"completed"`
	ProgressPercent int        `gorm:"default:0" json:"progressPercent"`
	CompletedAt     *time.Time `json:"completedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// TableName overrides the table name for TutorialProgress
func (TutorialProgress) TableName() string {
	return "tutorial_progress"
}
