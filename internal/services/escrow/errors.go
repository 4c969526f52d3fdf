package escrow

import "errors"

// Service errors
var (
	ErrNotAllowed        = errors.New("actor is not allowed to perform this transition")
	ErrInvalidTransition = errors.New("invalid milestone status transition")
	ErrNoFreelancer      = errors.New("project has no assigned freelancer")
)
