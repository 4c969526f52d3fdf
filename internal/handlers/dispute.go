package handlers

import (
	"trustlance/internal/models"
	"trustlance/internal/services/dispute"
	"trustlance/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DisputeHandler struct {
	disputeService dispute.Service
}

func NewDisputeHandler(disputeService dispute.Service) *DisputeHandler {
	return &DisputeHandler{disputeService: disputeService}
}

func (h *DisputeHandler) RaiseDispute(c *fiber.Ctx) error {
	var input struct {
		ProjectID uint   `json:"project_id"`
		Reason    string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	raised, err := h.disputeService.Raise(claims, input.ProjectID, input.Reason)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Dispute raised successfully",
		"data":    raised,
	})
}

func (h *DisputeHandler) ResolveDispute(c *fiber.Ctx) error {
	disputeID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid dispute ID")
	}

	var input struct {
		Resolution string `json:"resolution"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	resolved, err := h.disputeService.Resolve(claims, disputeID, input.Resolution)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Dispute resolved successfully", resolved)
}

func (h *DisputeHandler) GetProjectDisputes(c *fiber.Ctx) error {
	projectID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	disputes, err := h.disputeService.ListForProject(claims, projectID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Disputes retrieved successfully", disputes)
}

func (h *DisputeHandler) GetActiveDisputes(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	disputes, err := h.disputeService.ListActive(claims)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Active disputes retrieved successfully", disputes)
}

func (h *DisputeHandler) GetResolvedDisputes(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	disputes, err := h.disputeService.ListResolved(claims)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Resolved disputes retrieved successfully", disputes)
}
