package handlers

import (
	"trustlance/internal/models"
	"trustlance/internal/services/dashboard"
	"trustlance/internal/services/user"
	"trustlance/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
	userService      user.Service
}

func NewDashboardHandler(dashboardService dashboard.Service, userService user.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		userService:      userService,
	}
}

// GetDashboard returns the role-appropriate accounting view for the
// acting user.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	switch claims.Role {
	case models.RoleClient:
		stats, err := h.dashboardService.ClientDashboard(claims.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return response.Success(c, "Dashboard retrieved successfully", stats)

	case models.RoleFreelancer:
		freelancer, err := h.userService.GetByID(claims.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		stats, err := h.dashboardService.FreelancerDashboard(freelancer)
		if err != nil {
			return serviceError(c, err)
		}
		return response.Success(c, "Dashboard retrieved successfully", stats)

	case models.RoleAdmin:
		stats, err := h.dashboardService.AdminDashboard()
		if err != nil {
			return serviceError(c, err)
		}
		return response.Success(c, "Dashboard retrieved successfully", stats)

	default:
		return response.Forbidden(c, "Unknown role")
	}
}
