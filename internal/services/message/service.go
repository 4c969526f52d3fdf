package message

import (
	"errors"

	"trustlance/internal/models"
	"trustlance/internal/repositories"
)

// Service errors
var (
	ErrContentRequired = errors.New("message content is required")
	ErrNotParticipant  = errors.New("actor is not a participant in this project")
)

// Service is the append-only project chat. Messages get their id and
// timestamp on creation and are immutable afterwards; listing preserves
// insertion order.
type Service interface {
	Send(claims *models.UserClaims, projectID uint, content string, attachments []string) (*models.Message, error)
	ListForProject(claims *models.UserClaims, projectID uint) ([]models.Message, error)
}

type service struct {
	repo     repositories.MessageRepository
	projects repositories.ProjectRepository
	users    repositories.UserRepository
}

func NewService(repo repositories.MessageRepository, projects repositories.ProjectRepository, users repositories.UserRepository) Service {
	if repo == nil || projects == nil || users == nil {
		panic("message, project and user repositories are required")
	}
	return &service{repo: repo, projects: projects, users: users}
}

func (s *service) Send(claims *models.UserClaims, projectID uint, content string, attachments []string) (*models.Message, error) {
	if content == "" {
		return nil, ErrContentRequired
	}

	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(claims, project) {
		return nil, ErrNotParticipant
	}

	sender, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ProjectID:   projectID,
		SenderID:    sender.ID,
		SenderName:  sender.Name,
		Content:     content,
		Attachments: attachments,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *service) ListForProject(claims *models.UserClaims, projectID uint) ([]models.Message, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(claims, project) {
		return nil, ErrNotParticipant
	}
	return s.repo.ListByProjectID(projectID)
}

func isParticipant(claims *models.UserClaims, project *models.Project) bool {
	if claims.Role == models.RoleAdmin {
		return true
	}
	if project.ClientID == claims.UserID {
		return true
	}
	return project.FreelancerID != nil && *project.FreelancerID == claims.UserID
}
