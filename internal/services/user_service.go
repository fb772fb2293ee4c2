package services

import (
	"errors"

	"github.com/proplens/proplens/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUser fetches one user by id.
func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpsertUser mirrors the identity provider's view of a user into the local
// users table. Profile fields follow the provider; role and subscription
// state are managed locally and never overwritten here.
func UpsertUser(db *gorm.DB, user *models.User) (*models.User, error) {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}
	return GetUser(db, user.ID)
}

// CanModifyProperty reports whether a user may update or delete a listing.
// Owners always can; admins can regardless of ownership. Users absent from
// the local table are treated as plain users.
func CanModifyProperty(db *gorm.DB, userID string, property *models.Property) (bool, error) {
	if property.AgentID != nil && *property.AgentID == userID {
		return true, nil
	}

	user, err := GetUser(db, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}
