package dispute

import "errors"

// Service errors
var (
	ErrReasonRequired     = errors.New("dispute reason is required")
	ErrResolutionRequired = errors.New("dispute resolution is required")
	ErrNotAllowed         = errors.New("actor is not allowed to perform this operation")
	ErrActiveDispute      = errors.New("project already has an active dispute")
	ErrAlreadyResolved    = errors.New("dispute is already resolved")
)
