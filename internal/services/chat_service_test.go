package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/proplens/proplens/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserChatHistoryScopedAndOrdered(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "u1", models.RoleUser)
	createUser(t, db, "u2", models.RoleUser)

	for i := 0; i < 3; i++ {
		msg := models.ChatMessage{
			UserID:    "u1",
			Message:   fmt.Sprintf("question %d", i),
			Response:  "answer",
			CreatedAt: time.Now().Add(time.Duration(i-3) * time.Hour),
		}
		require.NoError(t, CreateChatMessage(db, &msg))
	}
	require.NoError(t, CreateChatMessage(db, &models.ChatMessage{
		UserID: "u2", Message: "other user", Response: "answer",
	}))

	history, err := UserChatHistory(db, "u1", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "question 2", history[0].Message)

	history, err = UserChatHistory(db, "u1", 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
