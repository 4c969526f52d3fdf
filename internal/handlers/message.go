package handlers

import (
	"trustlance/internal/models"
	"trustlance/internal/services/message"
	"trustlance/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	messageService message.Service
}

func NewMessageHandler(messageService message.Service) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	projectID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	var input struct {
		Content     string   `json:"content"`
		Attachments []string `json:"attachments"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	sent, err := h.messageService.Send(claims, projectID, input.Content, input.Attachments)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent",
		"data":    sent,
	})
}

func (h *MessageHandler) GetProjectMessages(c *fiber.Ctx) error {
	projectID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	messages, err := h.messageService.ListForProject(claims, projectID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Messages retrieved successfully", messages)
}
