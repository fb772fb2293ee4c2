package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/proplens/proplens/internal/models"
	"github.com/proplens/proplens/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp builds a fiber app with the API routes mounted and a stub auth
// middleware that trusts the X-Test-User header instead of a session cookie.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.AnalyticsRecord{},
		&models.Tutorial{},
		&models.TutorialProgress{},
		&models.ChatMessage{},
	))

	app := fiber.New()
	auth := func(c *fiber.Ctx) error {
		userID := c.Get("X-Test-User")
		if userID == "" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		c.Locals("account", &services.Account{ID: userID, Email: userID + "@example.com"})
		return c.Next()
	}

	propertyHandler := &PropertyHandler{DB: db}
	analyticsHandler := &AnalyticsHandler{DB: db}
	tutorialHandler := &TutorialHandler{DB: db}
	chatHandler := &ChatHandler{DB: db}

	api := app.Group("/api")
	api.Get("/properties", propertyHandler.ListProperties)
	api.Get("/properties/:id", propertyHandler.GetProperty)
	api.Post("/properties", auth, propertyHandler.CreateProperty)
	api.Put("/properties/:id", auth, propertyHandler.UpdateProperty)
	api.Delete("/properties/:id", auth, propertyHandler.DeleteProperty)
	api.Get("/dashboard/stats", auth, analyticsHandler.GetDashboardStats)
	api.Get("/analytics", auth, analyticsHandler.ListAnalytics)
	api.Post("/analytics", auth, analyticsHandler.CreateAnalytics)
	api.Get("/tutorials/progress/me", auth, tutorialHandler.GetMyProgress)
	api.Post("/tutorials/progress", auth, tutorialHandler.UpsertProgress)
	api.Get("/tutorials", tutorialHandler.ListTutorials)
	api.Get("/tutorials/:id", tutorialHandler.GetTutorial)
	api.Get("/ai/chat/history", auth, chatHandler.GetChatHistory)
	api.Post("/ai/chat", auth, chatHandler.SendChatMessage)

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, id string, role models.UserRole) {
	t.Helper()
	email := id + "@example.com"
	require.NoError(t, db.Create(&models.User{ID: id, Email: &email, Role: role}).Error)
}

func doJSON(t *testing.T, app *fiber.App, method, path, userID string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, target), "body: %s", string(raw))
}
