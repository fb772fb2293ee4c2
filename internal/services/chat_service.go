package services

import (
	"github.com/proplens/proplens/internal/models"
	"gorm.io/gorm"
)

// DefaultChatPageSize caps chat history reads when the caller omits a limit.
const DefaultChatPageSize = 50

// CreateChatMessage stores one exchange (user message plus assistant
// response) in the user's history.
func CreateChatMessage(db *gorm.DB, message *models.ChatMessage) error {
	return db.Create(message).Error
}

// UserChatHistory returns a user's most recent exchanges, newest first.
func UserChatHistory(db *gorm.DB, userID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultChatPageSize
	}

	messages := make([]models.ChatMessage, 0, limit)
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
