package handlers

import (
	"net/http"
	"testing"

	"github.com/proplens/proplens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendChatMessageStoresExchange(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "u1", models.RoleUser)

	resp := doJSON(t, app, http.MethodPost, "/api/ai/chat", "u1", map[string]interface{}{
		"message": "What ROI should I expect?",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["response"], "ROI (Return on Investment)")

	// The exchange lands in history with the canned response
	resp = doJSON(t, app, http.MethodGet, "/api/ai/chat/history", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var history []models.ChatMessage
	decodeBody(t, resp, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "What ROI should I expect?", history[0].Message)
	assert.Contains(t, history[0].Response, "ROI (Return on Investment)")

	// History lives on its own path; the send path does not answer GET
	resp = doJSON(t, app, http.MethodGet, "/api/ai/chat", "u1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSendChatMessageRequiresBody(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "u1", models.RoleUser)

	resp := doJSON(t, app, http.MethodPost, "/api/ai/chat", "u1", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatHistoryIsPerUser(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "u1", models.RoleUser)
	seedUser(t, db, "u2", models.RoleUser)

	doJSON(t, app, http.MethodPost, "/api/ai/chat", "u1", map[string]interface{}{"message": "hello"})
	doJSON(t, app, http.MethodPost, "/api/ai/chat", "u2", map[string]interface{}{"message": "hi"})

	resp := doJSON(t, app, http.MethodGet, "/api/ai/chat/history", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var history []models.ChatMessage
	decodeBody(t, resp, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "hi", history[0].Message)
}
