package handlers

import (
	"net/http"
	"testing"

	"github.com/proplens/proplens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorialProgressRoundTrip(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "u1", models.RoleUser)

	tutorial := models.Tutorial{Title: "Occupancy Basics", Category: "operations", Difficulty: models.DifficultyBeginner}
	require.NoError(t, db.Create(&tutorial).Error)

	resp := doJSON(t, app, http.MethodPost, "/api/tutorials/progress", "u1", map[string]interface{}{
		"tutorialId":      tutorial.ID,
		"completed":       true,
		"progressPercent": 100,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var progress models.TutorialProgress
	decodeBody(t, resp, &progress)
	assert.True(t, progress.Completed)
	assert.NotNil(t, progress.CompletedAt)

	resp = doJSON(t, app, http.MethodGet, "/api/tutorials/progress/me", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var mine []models.TutorialProgress
	decodeBody(t, resp, &mine)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Tutorial)
	assert.Equal(t, "Occupancy Basics", mine[0].Tutorial.Title)
}

func TestTutorialProgressUnknownTutorial(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "u1", models.RoleUser)

	resp := doJSON(t, app, http.MethodPost, "/api/tutorials/progress", "u1", map[string]interface{}{
		"tutorialId":      424242,
		"progressPercent": 10,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListTutorialsPublic(t *testing.T) {
	app, db := newTestApp(t)

	for _, tut := range []models.Tutorial{
		{Title: "A", Category: "operations", Difficulty: models.DifficultyBeginner},
		{Title: "B", Category: "analytics", Difficulty: models.DifficultyAdvanced},
	} {
		require.NoError(t, db.Create(&tut).Error)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/tutorials?difficulty=advanced", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tutorials []models.Tutorial
	decodeBody(t, resp, &tutorials)
	require.Len(t, tutorials, 1)
	assert.Equal(t, "B", tutorials[0].Title)
}
