package repositories

import "errors"

// Lookup failures are loud: a missing id is an error surfaced to the
// caller, never a silent no-op.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrDisputeNotFound   = errors.New("dispute not found")
)

var (
	ErrEmailTaken        = errors.New("email already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)
