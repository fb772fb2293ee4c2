package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/proplens/proplens/internal/services"
	"github.com/proplens/proplens/internal/utils"
	"gorm.io/gorm"
)

// TutorialHandler handles tutorial catalog and progress routes
type TutorialHandler struct {
	DB *gorm.DB
}

// progressRequest is the payload for reporting tutorial progress.
type progressRequest struct {
	TutorialID      uint `json:"tutorialId" validate:"required,gt=0"`
	Completed       bool `json:"completed"`
	ProgressPercent int  `json:"progressPercent" validate:"gte=0,lte=100"`
}

// ListTutorials handles GET /api/tutorials
// @Summary List tutorials
// @Tags Tutorials
// @Produce json
// @Param category query string false "Category"
// @Param difficulty query string false "Difficulty"
// @Param limit query integer false "Page size (default 20)"
// @Param offset query integer false "Page offset"
// @Success 200 {array} models.Tutorial
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tutorials [get]
func (h *TutorialHandler) ListTutorials(c *fiber.Ctx) error {
	filter := services.TutorialFilter{
		Category:   queryString(c, "category"),
		Difficulty: queryString(c, "difficulty"),
	}
	filter.Limit, filter.Offset = queryPage(c)

	tutorials, err := services.ListTutorials(h.DB, filter)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listTutorials")
	}

	return c.Status(fiber.StatusOK).JSON(tutorials)
}

// GetTutorial handles GET /api/tutorials/:id
// @Summary Get one tutorial
// @Tags Tutorials
// @Produce json
// @Param id path integer true "Tutorial ID"
// @Success 200 {object} models.Tutorial
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tutorials/{id} [get]
func (h *TutorialHandler) GetTutorial(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	tutorial, err := services.GetTutorial(h.DB, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Tutorial %d not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getTutorial")
	}

	return c.Status(fiber.StatusOK).JSON(tutorial)
}

// GetMyProgress handles GET /api/tutorials/progress/me
// @Summary Get the caller's tutorial progress
// @Tags Tutorials
// @Produce json
// @Success 200 {array} models.TutorialProgress
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tutorials/progress/me [get]
func (h *TutorialHandler) GetMyProgress(c *fiber.Ctx) error {
	account := currentAccount(c)

	progress, err := services.UserTutorialProgress(h.DB, account.ID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "tutorialProgress")
	}

	return c.Status(fiber.StatusOK).JSON(progress)
}

// UpsertProgress handles POST /api/tutorials/progress
// @Summary Report tutorial progress
// @Description Creates or overwrites the caller's progress on a tutorial
// @Tags Tutorials
// @Accept json
// @Produce json
// @Param progress body progressRequest true "Progress report"
// @Success 200 {object} models.TutorialProgress
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tutorials/progress [post]
func (h *TutorialHandler) UpsertProgress(c *fiber.Ctx) error {
	account := currentAccount(c)

	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "upsertProgress")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid progress report", validationErrors(err))
	}

	progress, err := services.UpsertTutorialProgress(h.DB, account.ID, req.TutorialID, req.Completed, req.ProgressPercent)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Tutorial %d not found", req.TutorialID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "upsertProgress")
	}

	return c.Status(fiber.StatusOK).JSON(progress)
}
