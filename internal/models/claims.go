package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Project permissions
	PermissionProjectRead   = "project:read"
	PermissionProjectCreate = "project:create"
	PermissionProjectAssign = "project:assign"

	// Milestone permissions
	PermissionMilestoneSubmit = "milestone:submit"
	PermissionMilestoneReview = "milestone:review"

	// Dispute permissions
	PermissionDisputeRaise   = "dispute:raise"
	PermissionDisputeResolve = "dispute:resolve"

	// Messaging permissions
	PermissionMessageWrite = "message:write"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionProjectRead,
			PermissionDisputeResolve,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case RoleClient:
		return []string{
			PermissionProjectRead,
			PermissionProjectCreate,
			PermissionProjectAssign,
			PermissionMilestoneReview,
			PermissionDisputeRaise,
			PermissionMessageWrite,
		}
	case RoleFreelancer:
		return []string{
			PermissionProjectRead,
			PermissionMilestoneSubmit,
			PermissionMessageWrite,
		}
	default:
		return nil
	}
}
