// Package project owns project creation and assignment. Validation runs
// in full before anything is written, so a rejected input never leaves a
// partial project behind.
package project

import (
	"time"

	"trustlance/internal/models"
	"trustlance/internal/repositories"

	"github.com/google/uuid"
)

// MilestoneInput describes one milestone at project creation time.
type MilestoneInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
}

// CreateInput describes a new project. The total amount is not part of
// the input; it is always computed as the sum of milestone amounts.
type CreateInput struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Deadline     time.Time        `json:"deadline"`
	FreelancerID *uint            `json:"freelancer_id,omitempty"`
	Milestones   []MilestoneInput `json:"milestones"`
}

// View is a project read model with the derived fields the stored row
// deliberately omits: the disputed escrow overlay and the progress
// percentage are recomputed on every read, never persisted.
type View struct {
	models.Project
	EffectiveEscrowStatus models.EscrowStatus `json:"effective_escrow_status"`
	Progress              float64             `json:"progress"`
}

type Service interface {
	Create(claims *models.UserClaims, input CreateInput) (*models.Project, error)
	Get(claims *models.UserClaims, projectID uint) (*View, error)
	ListForUser(claims *models.UserClaims) ([]View, error)
	AssignFreelancer(claims *models.UserClaims, projectID, freelancerID uint) (*models.Project, error)
}

type service struct {
	projects repositories.ProjectRepository
	disputes repositories.DisputeRepository
	users    repositories.UserRepository
}

func NewService(projects repositories.ProjectRepository, disputes repositories.DisputeRepository, users repositories.UserRepository) Service {
	if projects == nil || disputes == nil || users == nil {
		panic("project, dispute and user repositories are required")
	}
	return &service{projects: projects, disputes: disputes, users: users}
}

func (s *service) Create(claims *models.UserClaims, input CreateInput) (*models.Project, error) {
	if claims.Role != models.RoleClient {
		return nil, ErrNotAllowed
	}
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	milestones := make([]models.Milestone, 0, len(input.Milestones))
	var total float64
	for _, m := range input.Milestones {
		total += m.Amount
		milestones = append(milestones, models.Milestone{
			Title:       m.Title,
			Description: m.Description,
			Amount:      m.Amount,
			Status:      models.MilestonePending,
			DueDate:     m.DueDate,
		})
	}

	project := &models.Project{
		Reference:    uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		ClientID:     claims.UserID,
		FreelancerID: input.FreelancerID,
		TotalAmount:  total,
		EscrowStatus: models.EscrowLocked,
		Deadline:     input.Deadline,
		Milestones:   milestones,
	}

	if err := s.projects.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *service) Get(claims *models.UserClaims, projectID uint) (*View, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if !canRead(claims, project) {
		return nil, ErrNotAllowed
	}
	return s.buildView(project)
}

func (s *service) ListForUser(claims *models.UserClaims) ([]View, error) {
	var (
		projects []models.Project
		err      error
	)
	switch claims.Role {
	case models.RoleClient:
		projects, err = s.projects.ListByClient(claims.UserID)
	case models.RoleFreelancer:
		projects, err = s.projects.ListByFreelancer(claims.UserID)
	case models.RoleAdmin:
		projects, err = s.projects.ListAll()
	default:
		return nil, ErrNotAllowed
	}
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(projects))
	for i := range projects {
		view, err := s.buildView(&projects[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *service) AssignFreelancer(claims *models.UserClaims, projectID, freelancerID uint) (*models.Project, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if claims.Role != models.RoleClient || project.ClientID != claims.UserID {
		return nil, ErrNotAllowed
	}
	if project.FreelancerID != nil {
		return nil, ErrAlreadyAssigned
	}

	freelancer, err := s.users.GetByID(freelancerID)
	if err != nil {
		return nil, err
	}
	if freelancer.Role != models.RoleFreelancer {
		return nil, ErrNotAFreelancer
	}

	project.FreelancerID = &freelancer.ID
	if err := s.projects.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// buildView overlays the derived state: a project reads as disputed
// exactly while a non-resolved dispute references it.
func (s *service) buildView(project *models.Project) (*View, error) {
	disputed, err := s.disputes.ExistsActiveByProjectID(project.ID)
	if err != nil {
		return nil, err
	}
	effective := project.EscrowStatus
	if disputed {
		effective = models.EscrowDisputed
	}
	return &View{
		Project:               *project,
		EffectiveEscrowStatus: effective,
		Progress:              project.Progress(),
	}, nil
}

func canRead(claims *models.UserClaims, project *models.Project) bool {
	switch claims.Role {
	case models.RoleAdmin:
		return true
	case models.RoleClient:
		return project.ClientID == claims.UserID
	case models.RoleFreelancer:
		return project.FreelancerID != nil && *project.FreelancerID == claims.UserID
	default:
		return false
	}
}

func validateCreate(input CreateInput) error {
	if input.Title == "" {
		return ErrTitleRequired
	}
	if input.Description == "" {
		return ErrDescriptionRequired
	}
	if input.Deadline.IsZero() {
		return ErrDeadlineRequired
	}
	if len(input.Milestones) == 0 {
		return ErrNoMilestones
	}
	for _, m := range input.Milestones {
		if m.Title == "" {
			return ErrMilestoneTitle
		}
		if m.Amount <= 0 {
			return ErrMilestoneAmount
		}
		if m.DueDate.IsZero() {
			return ErrMilestoneDueDate
		}
	}
	return nil
}
