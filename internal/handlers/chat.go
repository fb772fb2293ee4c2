package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/proplens/proplens/internal/models"
	"github.com/proplens/proplens/internal/services"
	"github.com/proplens/proplens/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChatHandler handles AI assistant chat routes
type ChatHandler struct {
	DB *gorm.DB
}

// chatRequest is the payload for a chat message.
type chatRequest struct {
	Message string                 `json:"message" validate:"required,min=1"`
	Context map[string]interface{} `json:"context"`
}

// GetChatHistory handles GET /api/ai/chat/history
// @Summary Get the caller's chat history
// @Tags Chat
// @Produce json
// @Param limit query integer false "Maximum messages (default 50)"
// @Success 200 {array} models.ChatMessage
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /ai/chat/history [get]
func (h *ChatHandler) GetChatHistory(c *fiber.Ctx) error {
	account := currentAccount(c)
	limit, _ := queryPage(c)

	messages, err := services.UserChatHistory(h.DB, account.ID, limit)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "chatHistory")
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

// SendChatMessage handles POST /api/ai/chat
// @Summary Send a message to the assistant
// @Description Stores the exchange and returns the assistant's response
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body chatRequest true "Message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /ai/chat [post]
func (h *ChatHandler) SendChatMessage(c *fiber.Ctx) error {
	account := currentAccount(c)

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "sendChatMessage")
	}
	if err := validate.Struct(req); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid chat message", validationErrors(err))
	}

	response := services.AssistantResponse(req.Message)

	message := models.ChatMessage{
		UserID:   account.ID,
		Message:  req.Message,
		Response: response,
	}
	if req.Context != nil {
		message.Context = datatypes.JSONMap(req.Context)
	}

	if err := services.CreateChatMessage(h.DB, &message); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "sendChatMessage")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"response": response})
}
