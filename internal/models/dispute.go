package models

import (
	"time"

	"gorm.io/gorm"
)

// DisputeStatus lifecycle: open -> under_review -> resolved. The current
// flow never emits under_review; everything that is not resolved counts
// as active. A resolved dispute is immutable.
type DisputeStatus string

const (
	DisputeOpen        DisputeStatus = "open"
	DisputeUnderReview DisputeStatus = "under_review"
	DisputeResolved    DisputeStatus = "resolved"
)

type Dispute struct {
	gorm.Model
	Reference  string        `gorm:"uniqueIndex;not null" json:"reference"`
	ProjectID  uint          `gorm:"not null;index" json:"project_id"`
	RaisedBy   uint          `gorm:"not null" json:"raised_by"`
	Reason     string        `gorm:"type:text;not null" json:"reason"`
	Status     DisputeStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	Resolution string        `gorm:"type:text" json:"resolution,omitempty"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}

// Active reports whether the dispute still gates its project's escrow.
func (d *Dispute) Active() bool {
	return d.Status != DisputeResolved
}
