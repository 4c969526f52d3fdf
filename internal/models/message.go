package models

import (
	"gorm.io/gorm"
)

// Message is an append-only project chat entry. Rows are never updated
// or deleted after creation.
type Message struct {
	gorm.Model
	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	SenderID    uint       `gorm:"not null" json:"sender_id"`
	SenderName  string     `gorm:"not null" json:"sender_name"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Attachments StringList `gorm:"type:jsonb" json:"attachments,omitempty"`
}
