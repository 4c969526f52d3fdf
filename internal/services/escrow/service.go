// Package escrow implements the milestone state machine. Every
// transition takes the acting user's claims explicitly and enforces
// the actor constraint itself; callers are never trusted to have
// pre-filtered who may do what.
package escrow

import (
	"time"

	"trustlance/internal/models"
	"trustlance/internal/repositories"
)

type Service interface {
	// StartMilestone moves a pending (or rejected, for rework)
	// milestone to in_progress. Assigned freelancer only.
	StartMilestone(claims *models.UserClaims, projectID, milestoneID uint) (*models.Milestone, error)

	// SubmitMilestone hands a milestone over for client review,
	// recording the submission time, notes and attached file names.
	// Assigned freelancer only. A rejected milestone may be submitted
	// again; that is the resubmission path.
	SubmitMilestone(claims *models.UserClaims, projectID, milestoneID uint, notes string, files []string) (*models.Milestone, error)

	// ApproveMilestone accepts a submitted milestone and records the
	// approval time. Owning client only. Approval is terminal; payment
	// release is simulated, the only effect is the status change and
	// the recomputed accounting views.
	ApproveMilestone(claims *models.UserClaims, projectID, milestoneID uint) (*models.Milestone, error)

	// RejectMilestone sends a submitted milestone back to the
	// freelancer. Owning client only.
	RejectMilestone(claims *models.UserClaims, projectID, milestoneID uint) (*models.Milestone, error)
}

type service struct {
	projects repositories.ProjectRepository
}

func NewService(projects repositories.ProjectRepository) Service {
	if projects == nil {
		panic("project repository is required")
	}
	return &service{projects: projects}
}

// canTransition encodes the forward-only lifecycle. The sole backward
// edge is rejected -> in_progress/submitted, the resubmission path.
// Approved is terminal: nothing transitions out of it.
func canTransition(from, to models.MilestoneStatus) bool {
	switch to {
	case models.MilestoneInProgress:
		return from == models.MilestonePending || from == models.MilestoneRejected
	case models.MilestoneSubmitted:
		return from == models.MilestonePending ||
			from == models.MilestoneInProgress ||
			from == models.MilestoneRejected
	case models.MilestoneApproved, models.MilestoneRejected:
		return from == models.MilestoneSubmitted
	default:
		return false
	}
}

func (s *service) StartMilestone(claims *models.UserClaims, projectID, milestoneID uint) (*models.Milestone, error) {
	project, milestone, err := s.load(projectID, milestoneID)
	if err != nil {
		return nil, err
	}
	if err := requireAssignedFreelancer(claims, project); err != nil {
		return nil, err
	}
	if !canTransition(milestone.Status, models.MilestoneInProgress) {
		return nil, ErrInvalidTransition
	}

	milestone.Status = models.MilestoneInProgress
	if err := s.projects.SaveMilestone(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *service) SubmitMilestone(claims *models.UserClaims, projectID, milestoneID uint, notes string, files []string) (*models.Milestone, error) {
	project, milestone, err := s.load(projectID, milestoneID)
	if err != nil {
		return nil, err
	}
	if err := requireAssignedFreelancer(claims, project); err != nil {
		return nil, err
	}
	if !canTransition(milestone.Status, models.MilestoneSubmitted) {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	milestone.Status = models.MilestoneSubmitted
	milestone.SubmittedDate = &now
	milestone.Notes = notes
	milestone.Files = files

	if err := s.projects.SaveMilestone(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *service) ApproveMilestone(claims *models.UserClaims, projectID, milestoneID uint) (*models.Milestone, error) {
	project, milestone, err := s.load(projectID, milestoneID)
	if err != nil {
		return nil, err
	}
	if err := requireOwningClient(claims, project); err != nil {
		return nil, err
	}
	if !canTransition(milestone.Status, models.MilestoneApproved) {
		return nil, ErrInvalidTransition
	}

	now := time.Now().UTC()
	milestone.Status = models.MilestoneApproved
	milestone.ApprovedDate = &now

	if err := s.projects.SaveMilestone(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *service) RejectMilestone(claims *models.UserClaims, projectID, milestoneID uint) (*models.Milestone, error) {
	project, milestone, err := s.load(projectID, milestoneID)
	if err != nil {
		return nil, err
	}
	if err := requireOwningClient(claims, project); err != nil {
		return nil, err
	}
	if !canTransition(milestone.Status, models.MilestoneRejected) {
		return nil, ErrInvalidTransition
	}

	// Rejection only flips the status; the submission notes and files
	// stay visible to the freelancer until a resubmission replaces them.
	milestone.Status = models.MilestoneRejected

	if err := s.projects.SaveMilestone(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *service) load(projectID, milestoneID uint) (*models.Project, *models.Milestone, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, nil, err
	}
	milestone, err := s.projects.GetMilestone(projectID, milestoneID)
	if err != nil {
		return nil, nil, err
	}
	return project, milestone, nil
}

func requireAssignedFreelancer(claims *models.UserClaims, project *models.Project) error {
	if claims.Role != models.RoleFreelancer {
		return ErrNotAllowed
	}
	if project.FreelancerID == nil {
		return ErrNoFreelancer
	}
	if *project.FreelancerID != claims.UserID {
		return ErrNotAllowed
	}
	return nil
}

func requireOwningClient(claims *models.UserClaims, project *models.Project) error {
	if claims.Role != models.RoleClient || project.ClientID != claims.UserID {
		return ErrNotAllowed
	}
	return nil
}
