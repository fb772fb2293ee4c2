package models

import (
	"time"
)

// User is an account provisioned from the external identity provider on
// first sign-in. Rows are upserted by id and never hard-deleted.
type User struct {
	ID                 string           `gorm:"primaryKey;size:64" json:"id"`
	Email              *string          `gorm:"uniqueIndex;size:255" json:"email"`
	FirstName          *string          `gorm:"size:100" json:"firstName"`
	LastName           *string          `gorm:"size:100" json:"lastName"`
	ProfileImageURL    *string          `gorm:"size:500" json:"profileImageUrl"`
	Role               UserRole         `gorm:"type:varchar(20);not null;default:user" json:"role"`
	SubscriptionPlan   SubscriptionPlan `gorm:"type:varchar(20);default:starter" json:"subscriptionPlan"`
	SubscriptionActive bool             `gorm:"default:true" json:"subscriptionActive"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
