package services

import (
	"testing"
	"time"

	"github.com/proplens/proplens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTutorial(t *testing.T, db *gorm.DB, title, category string, difficulty models.TutorialDifficulty) uint {
	t.Helper()
	tutorial := models.Tutorial{Title: title, Category: category, Difficulty: difficulty}
	require.NoError(t, db.Create(&tutorial).Error)
	return tutorial.ID
}

func TestListTutorialsFilters(t *testing.T) {
	db := newTestDB(t)

	seedTutorial(t, db, "Occupancy Basics", "operations", models.DifficultyBeginner)
	seedTutorial(t, db, "Deep Market Analysis", "analytics", models.DifficultyAdvanced)
	seedTutorial(t, db, "Revenue Reports", "analytics", models.DifficultyBeginner)

	tutorials, err := ListTutorials(db, TutorialFilter{})
	require.NoError(t, err)
	assert.Len(t, tutorials, 3)

	tutorials, err = ListTutorials(db, TutorialFilter{Category: strPtr("analytics")})
	require.NoError(t, err)
	assert.Len(t, tutorials, 2)

	tutorials, err = ListTutorials(db, TutorialFilter{
		Category:   strPtr("analytics"),
		Difficulty: strPtr("beginner"),
	})
	require.NoError(t, err)
	require.Len(t, tutorials, 1)
	assert.Equal(t, "Revenue Reports", tutorials[0].Title)
}

func TestUpsertTutorialProgressIsIdempotentPerPair(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1", models.RoleUser)
	tutorialID := seedTutorial(t, db, "Occupancy Basics", "operations", models.DifficultyBeginner)

	first, err := UpsertTutorialProgress(db, "u1", tutorialID, false, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, first.ProgressPercent)
	assert.False(t, first.Completed)
	assert.Nil(t, first.CompletedAt)

	// Second report overwrites rather than duplicating
	second, err := UpsertTutorialProgress(db, "u1", tutorialID, false, 60)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 60, second.ProgressPercent)

	var count int64
	require.NoError(t, db.Model(&models.TutorialProgress{}).
		Where("user_id = ? AND tutorial_id = ?", "u1", tutorialID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertTutorialProgressCompletionTimestamp(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1", models.RoleUser)
	tutorialID := seedTutorial(t, db, "Occupancy Basics", "operations", models.DifficultyBeginner)

	progress, err := UpsertTutorialProgress(db, "u1", tutorialID, true, 100)
	require.NoError(t, err)
	require.NotNil(t, progress.CompletedAt)
	assert.WithinDuration(t, time.Now(), *progress.CompletedAt, time.Minute)

	// Un-completing clears the timestamp
	progress, err = UpsertTutorialProgress(db, "u1", tutorialID, false, 80)
	require.NoError(t, err)
	assert.False(t, progress.Completed)
	assert.Nil(t, progress.CompletedAt)
}

func TestUpsertTutorialProgressUnknownTutorial(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1", models.RoleUser)

	_, err := UpsertTutorialProgress(db, "u1", 4242, true, 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserTutorialProgressPreloadsTutorial(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1", models.RoleUser)
	createUser(t, db, "u2", models.RoleUser)
	firstID := seedTutorial(t, db, "First", "operations", models.DifficultyBeginner)
	secondID := seedTutorial(t, db, "Second", "operations", models.DifficultyBeginner)

	_, err := UpsertTutorialProgress(db, "u1", firstID, true, 100)
	require.NoError(t, err)
	_, err = UpsertTutorialProgress(db, "u1", secondID, false, 10)
	require.NoError(t, err)
	_, err = UpsertTutorialProgress(db, "u2", firstID, false, 50)
	require.NoError(t, err)

	progress, err := UserTutorialProgress(db, "u1")
	require.NoError(t, err)
	require.Len(t, progress, 2)
	for _, p := range progress {
		require.NotNil(t, p.Tutorial)
		assert.NotEmpty(t, p.Tutorial.Title)
	}
}
