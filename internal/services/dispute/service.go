// Package dispute implements the dispute lifecycle. A dispute gates its
// project's escrow display while active; only an admin resolution ends
// it, and a resolved dispute is immutable.
package dispute

import (
	"time"

	"trustlance/internal/models"
	"trustlance/internal/repositories"

	"github.com/google/uuid"
)

type Service interface {
	// Raise opens a dispute on a project. Owning client only; rejected
	// while another dispute on the same project is still active.
	Raise(claims *models.UserClaims, projectID uint, reason string) (*models.Dispute, error)

	// Resolve closes a dispute with the admin's resolution text.
	// Resolving an already resolved dispute is rejected and leaves the
	// original resolution and timestamp untouched.
	Resolve(claims *models.UserClaims, disputeID uint, resolution string) (*models.Dispute, error)

	ListForProject(claims *models.UserClaims, projectID uint) ([]models.Dispute, error)
	ListActive(claims *models.UserClaims) ([]models.Dispute, error)
	ListResolved(claims *models.UserClaims) ([]models.Dispute, error)
}

type service struct {
	repo     repositories.DisputeRepository
	projects repositories.ProjectRepository
}

func NewService(repo repositories.DisputeRepository, projects repositories.ProjectRepository) Service {
	if repo == nil || projects == nil {
		panic("dispute and project repositories are required")
	}
	return &service{repo: repo, projects: projects}
}

func (s *service) Raise(claims *models.UserClaims, projectID uint, reason string) (*models.Dispute, error) {
	if reason == "" {
		return nil, ErrReasonRequired
	}

	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if claims.Role != models.RoleClient || project.ClientID != claims.UserID {
		return nil, ErrNotAllowed
	}

	exists, err := s.repo.ExistsActiveByProjectID(projectID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrActiveDispute
	}

	dispute := &models.Dispute{
		Reference: uuid.NewString(),
		ProjectID: projectID,
		RaisedBy:  claims.UserID,
		Reason:    reason,
		Status:    models.DisputeOpen,
	}
	if err := s.repo.Create(dispute); err != nil {
		return nil, err
	}
	return dispute, nil
}

func (s *service) Resolve(claims *models.UserClaims, disputeID uint, resolution string) (*models.Dispute, error) {
	if claims.Role != models.RoleAdmin {
		return nil, ErrNotAllowed
	}
	if resolution == "" {
		return nil, ErrResolutionRequired
	}

	dispute, err := s.repo.FindByID(disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status == models.DisputeResolved {
		return nil, ErrAlreadyResolved
	}

	now := time.Now().UTC()
	dispute.Status = models.DisputeResolved
	dispute.Resolution = resolution
	dispute.ResolvedAt = &now

	if err := s.repo.Update(dispute); err != nil {
		return nil, err
	}
	return dispute, nil
}

func (s *service) ListForProject(claims *models.UserClaims, projectID uint) ([]models.Dispute, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}

	allowed := claims.Role == models.RoleAdmin ||
		(claims.Role == models.RoleClient && project.ClientID == claims.UserID) ||
		(claims.Role == models.RoleFreelancer && project.FreelancerID != nil && *project.FreelancerID == claims.UserID)
	if !allowed {
		return nil, ErrNotAllowed
	}

	return s.repo.FindByProjectID(projectID)
}

func (s *service) ListActive(claims *models.UserClaims) ([]models.Dispute, error) {
	if claims.Role != models.RoleAdmin {
		return nil, ErrNotAllowed
	}
	return s.repo.ListActive()
}

func (s *service) ListResolved(claims *models.UserClaims) ([]models.Dispute, error) {
	if claims.Role != models.RoleAdmin {
		return nil, ErrNotAllowed
	}
	return s.repo.ListResolved()
}
