package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proplens/proplens/internal/models"
	"github.com/proplens/proplens/internal/services"
	"github.com/proplens/proplens/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles the identity mirror route
type AuthHandler struct {
	DB *gorm.DB
}

// GetCurrentUser handles GET /api/auth/user
// @Summary Get the authenticated user
// @Description Mirrors the identity provider's profile into the local users table and returns the local record
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/user [get]
func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	account := currentAccount(c)

	user := models.User{
		ID:              account.ID,
		FirstName:       account.GivenName,
		LastName:        account.FamilyName,
		ProfileImageURL: account.Picture,
	}
	if account.Email != "" {
		user.Email = &account.Email
	}

	saved, err := services.UpsertUser(h.DB, &user)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "currentUser")
	}

	return c.Status(fiber.StatusOK).JSON(saved)
}
