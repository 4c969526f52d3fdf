package user

import (
	"errors"
	"strings"

	"trustlance/internal/models"
	"trustlance/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	GetByID(id uint) (*models.User, error)
	Create(input *models.CreateUserInput) (*models.User, error)
	List(page, limit int) ([]*models.User, int64, error)
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *service) Create(input *models.CreateUserInput) (*models.User, error) {
	if input.Name == "" {
		return nil, errors.New("name is required")
	}
	if input.Email == "" {
		return nil, errors.New("email is required")
	}
	if len(input.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if !models.ValidRole(input.Role) {
		return nil, errors.New("role must be client, freelancer or admin")
	}

	existingUser, _ := s.repo.GetByEmail(input.Email)
	if existingUser != nil {
		return nil, repositories.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     input.Role,
		Avatar:   initials(input.Name),
	}
	if input.Role == models.RoleFreelancer {
		// New freelancers start with a full baseline score; it is only
		// displayed until real approvals exist to compute from.
		baseline := 100
		user.ReliabilityScore = &baseline
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) List(page, limit int) ([]*models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.List((page-1)*limit, limit)
}

func initials(name string) string {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return strings.ToUpper(name)
	}
	return strings.ToUpper(name[:2])
}
