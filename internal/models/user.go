package models

import (
	"gorm.io/gorm"
)

// User roles. A role is fixed at signup and never changes in-session.
const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
	RoleAdmin      = "admin"
)

// ValidRole reports whether role is one of the three platform roles.
func ValidRole(role string) bool {
	return role == RoleClient || role == RoleFreelancer || role == RoleAdmin
}

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Role     string `gorm:"not null" json:"role"`
	Avatar   string `json:"avatar"`
	// ReliabilityScore is the freelancer's baseline on-time percentage,
	// used until they have approved milestones of their own. Nil for
	// clients and admins.
	ReliabilityScore *int `json:"reliability_score,omitempty"`
	TokenVersion     int  `gorm:"default:1" json:"-"`
}

type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
