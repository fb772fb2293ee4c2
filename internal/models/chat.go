package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChatMessage is one exchange with the assistant: the inbound message and
// the generated response, append-only and ordered by creation time.
type ChatMessage struct {
	ID        uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string            `gorm:"size:64;not null;index" json:"userId"`
	User      *User             `gorm:"foreignKey:UserID" json:"-"`
	Message   string            `gorm:"type:text;not null" json:"message"`
	Response  string            `gorm:"type:text;not null" json:"response"`
	Context   datatypes.JSONMap `json:"context"`
	CreatedAt time.Time         `gorm:"index" json:"createdAt"`
}

// TableName overrides the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "ai_chat_messages"
}
