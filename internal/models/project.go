package models

import (
	"time"

	"gorm.io/gorm"
)

// EscrowStatus is the stored holding state of a project's funds. The
// disputed overlay is derived from open disputes on read, never stored.
type EscrowStatus string

const (
	EscrowLocked   EscrowStatus = "locked"
	EscrowReleased EscrowStatus = "released"
	EscrowRefunded EscrowStatus = "refunded"
	EscrowDisputed EscrowStatus = "disputed"
)

// MilestoneStatus values form a one-way lifecycle:
// pending -> in_progress -> submitted -> approved | rejected.
// A rejected milestone may be resubmitted (back through in_progress);
// approved is terminal.
type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneSubmitted  MilestoneStatus = "submitted"
	MilestoneApproved   MilestoneStatus = "approved"
	MilestoneRejected   MilestoneStatus = "rejected"
)

type Project struct {
	gorm.Model
	Reference    string       `gorm:"uniqueIndex;not null" json:"reference"`
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	ClientID     uint         `gorm:"not null;index" json:"client_id"`
	FreelancerID *uint        `gorm:"index" json:"freelancer_id,omitempty"`
	TotalAmount  float64      `gorm:"not null" json:"total_amount"`
	EscrowStatus EscrowStatus `gorm:"type:varchar(20);not null;default:'locked'" json:"escrow_status"`
	Deadline     time.Time    `gorm:"not null" json:"deadline"`
	Milestones   []Milestone  `gorm:"foreignKey:ProjectID" json:"milestones"`
}

type Milestone struct {
	gorm.Model
	ProjectID     uint            `gorm:"not null;index" json:"project_id"`
	Title         string          `gorm:"not null" json:"title"`
	Description   string          `gorm:"type:text" json:"description"`
	Amount        float64         `gorm:"not null" json:"amount"`
	Status        MilestoneStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DueDate       time.Time       `gorm:"not null" json:"due_date"`
	SubmittedDate *time.Time      `json:"submitted_date,omitempty"`
	ApprovedDate  *time.Time      `json:"approved_date,omitempty"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	Files         StringList      `gorm:"type:jsonb" json:"files,omitempty"`
}

// MilestonesTotal sums the milestone amounts. It must equal TotalAmount
// at all times; project creation computes TotalAmount from it and no
// operation edits milestone amounts afterwards.
func (p *Project) MilestonesTotal() float64 {
	var sum float64
	for _, m := range p.Milestones {
		sum += m.Amount
	}
	return sum
}

// ApprovedCount returns how many milestones have been approved.
func (p *Project) ApprovedCount() int {
	n := 0
	for _, m := range p.Milestones {
		if m.Status == MilestoneApproved {
			n++
		}
	}
	return n
}

// Progress is the approved share of milestones as a percentage.
func (p *Project) Progress() float64 {
	if len(p.Milestones) == 0 {
		return 0
	}
	return float64(p.ApprovedCount()) / float64(len(p.Milestones)) * 100
}
