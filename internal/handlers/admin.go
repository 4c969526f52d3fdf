package handlers

import (
	"trustlance/internal/services/user"
	"trustlance/internal/utils/pagination"
	"trustlance/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	userService user.Service
}

func NewAdminHandler(userService user.Service) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// GetUsersPaginated lists platform accounts for the admin panel.
func (h *AdminHandler) GetUsersPaginated(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	users, total, err := h.userService.List(p.Page, p.Limit)
	if err != nil {
		return response.ServerError(c, "Failed to list users")
	}

	p.Total = total
	return c.JSON(pagination.Response(p, users))
}
