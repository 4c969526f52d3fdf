package handlers

import (
	"errors"

	"trustlance/internal/repositories"
	"trustlance/internal/services/dispute"
	"trustlance/internal/services/escrow"
	"trustlance/internal/services/message"
	"trustlance/internal/services/project"
	"trustlance/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps a service error to the right HTTP response:
// validation failures 400, authorization failures 403, missing ids 404,
// state conflicts 409, everything else 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrUserNotFound),
		errors.Is(err, repositories.ErrProjectNotFound),
		errors.Is(err, repositories.ErrMilestoneNotFound),
		errors.Is(err, repositories.ErrDisputeNotFound):
		return response.NotFound(c, err.Error())

	case errors.Is(err, escrow.ErrNotAllowed),
		errors.Is(err, project.ErrNotAllowed),
		errors.Is(err, dispute.ErrNotAllowed),
		errors.Is(err, message.ErrNotParticipant):
		return response.Forbidden(c, err.Error())

	case errors.Is(err, escrow.ErrInvalidTransition),
		errors.Is(err, escrow.ErrNoFreelancer),
		errors.Is(err, dispute.ErrActiveDispute),
		errors.Is(err, dispute.ErrAlreadyResolved),
		errors.Is(err, project.ErrAlreadyAssigned):
		return response.Conflict(c, err.Error())

	case errors.Is(err, project.ErrTitleRequired),
		errors.Is(err, project.ErrDescriptionRequired),
		errors.Is(err, project.ErrDeadlineRequired),
		errors.Is(err, project.ErrNoMilestones),
		errors.Is(err, project.ErrMilestoneTitle),
		errors.Is(err, project.ErrMilestoneAmount),
		errors.Is(err, project.ErrMilestoneDueDate),
		errors.Is(err, project.ErrNotAFreelancer),
		errors.Is(err, dispute.ErrReasonRequired),
		errors.Is(err, dispute.ErrResolutionRequired),
		errors.Is(err, message.ErrContentRequired):
		return response.BadRequest(c, err.Error())

	default:
		return response.ServerError(c, err.Error())
	}
}
