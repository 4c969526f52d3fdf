package handlers

import (
	"trustlance/internal/models"
	"trustlance/internal/services/escrow"
	"trustlance/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type MilestoneHandler struct {
	escrowService escrow.Service
}

func NewMilestoneHandler(escrowService escrow.Service) *MilestoneHandler {
	return &MilestoneHandler{escrowService: escrowService}
}

func (h *MilestoneHandler) StartMilestone(c *fiber.Ctx) error {
	projectID, milestoneID, err := h.ids(c)
	if err != nil {
		return response.BadRequest(c, "Invalid project or milestone ID")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	milestone, err := h.escrowService.StartMilestone(claims, projectID, milestoneID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Milestone started", milestone)
}

func (h *MilestoneHandler) SubmitMilestone(c *fiber.Ctx) error {
	projectID, milestoneID, err := h.ids(c)
	if err != nil {
		return response.BadRequest(c, "Invalid project or milestone ID")
	}

	var input struct {
		Notes string   `json:"notes"`
		Files []string `json:"files"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	milestone, err := h.escrowService.SubmitMilestone(claims, projectID, milestoneID, input.Notes, input.Files)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Milestone submitted for review", milestone)
}

func (h *MilestoneHandler) ApproveMilestone(c *fiber.Ctx) error {
	projectID, milestoneID, err := h.ids(c)
	if err != nil {
		return response.BadRequest(c, "Invalid project or milestone ID")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	milestone, err := h.escrowService.ApproveMilestone(claims, projectID, milestoneID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Milestone approved, payment released", milestone)
}

func (h *MilestoneHandler) RejectMilestone(c *fiber.Ctx) error {
	projectID, milestoneID, err := h.ids(c)
	if err != nil {
		return response.BadRequest(c, "Invalid project or milestone ID")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	milestone, err := h.escrowService.RejectMilestone(claims, projectID, milestoneID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Milestone rejected", milestone)
}

func (h *MilestoneHandler) ids(c *fiber.Ctx) (uint, uint, error) {
	projectID, err := parseID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	milestoneID, err := parseID(c, "milestoneId")
	if err != nil {
		return 0, 0, err
	}
	return projectID, milestoneID, nil
}
