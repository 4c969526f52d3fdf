package handlers

import (
	"strconv"

	"trustlance/internal/models"
	"trustlance/internal/services/project"
	"trustlance/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ProjectHandler struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var input project.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	created, err := h.projectService.Create(claims, input)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Project created, funds locked in escrow",
		"data":    created,
	})
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	projectID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	view, err := h.projectService.Get(claims, projectID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Project retrieved successfully", view)
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	views, err := h.projectService.ListForUser(claims)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Projects retrieved successfully", views)
}

func (h *ProjectHandler) AssignFreelancer(c *fiber.Ctx) error {
	projectID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	var input struct {
		FreelancerID uint `json:"freelancer_id"`
	}
	if err := c.BodyParser(&input); err != nil || input.FreelancerID == 0 {
		return response.BadRequest(c, "Freelancer ID is required")
	}

	claims := c.Locals("claims").(*models.UserClaims)
	updated, err := h.projectService.AssignFreelancer(claims, projectID, input.FreelancerID)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Freelancer assigned successfully", updated)
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	return uint(id), err
}
