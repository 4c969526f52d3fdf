package project

import "errors"

// Service errors
var (
	ErrTitleRequired       = errors.New("project title is required")
	ErrDescriptionRequired = errors.New("project description is required")
	ErrDeadlineRequired    = errors.New("project deadline is required")
	ErrNoMilestones        = errors.New("at least one milestone is required")
	ErrMilestoneTitle      = errors.New("milestone title is required")
	ErrMilestoneAmount     = errors.New("milestone amount must be positive")
	ErrMilestoneDueDate    = errors.New("milestone due date is required")
	ErrNotAllowed          = errors.New("actor is not allowed to perform this operation")
	ErrNotAFreelancer      = errors.New("assignee is not a freelancer")
	ErrAlreadyAssigned     = errors.New("project already has an assigned freelancer")
)
