package project

import (
	"testing"
	"time"

	"trustlance/internal/models"
	"trustlance/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(id uint) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepo) ListByClient(clientID uint) ([]models.Project, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepo) ListByFreelancer(freelancerID uint) ([]models.Project, error) {
	args := m.Called(freelancerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepo) ListAll() ([]models.Project, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepo) GetMilestone(projectID, milestoneID uint) (*models.Milestone, error) {
	args := m.Called(projectID, milestoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Milestone), args.Error(1)
}

func (m *MockProjectRepo) SaveMilestone(milestone *models.Milestone) error {
	args := m.Called(milestone)
	return args.Error(0)
}

type MockDisputeRepo struct {
	mock.Mock
}

func (m *MockDisputeRepo) Create(dispute *models.Dispute) error {
	args := m.Called(dispute)
	return args.Error(0)
}

func (m *MockDisputeRepo) FindByID(id uint) (*models.Dispute, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dispute), args.Error(1)
}

func (m *MockDisputeRepo) FindByProjectID(projectID uint) ([]models.Dispute, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dispute), args.Error(1)
}

func (m *MockDisputeRepo) ExistsActiveByProjectID(projectID uint) (bool, error) {
	args := m.Called(projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDisputeRepo) ListActive() ([]models.Dispute, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dispute), args.Error(1)
}

func (m *MockDisputeRepo) ListResolved() ([]models.Dispute, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dispute), args.Error(1)
}

func (m *MockDisputeRepo) Update(dispute *models.Dispute) error {
	args := m.Called(dispute)
	return args.Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) IncrementTokenVersion(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepo) List(offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.User), args.Get(1).(int64), args.Error(2)
}

func validInput() CreateInput {
	due := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	return CreateInput{
		Title:       "E-commerce Website Redesign",
		Description: "Complete redesign with modern UI",
		Deadline:    time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC),
		Milestones: []MilestoneInput{
			{Title: "Design Mockups", Amount: 1500, DueDate: due},
			{Title: "Frontend Development", Amount: 2500, DueDate: due},
			{Title: "Backend Integration", Amount: 1000, DueDate: due},
		},
	}
}

func TestCreateProject(t *testing.T) {
	claims := &models.UserClaims{UserID: 1, Role: models.RoleClient}

	t.Run("total amount is the milestone sum and escrow locks", func(t *testing.T) {
		repo := new(MockProjectRepo)
		repo.On("Create", mock.Anything).Return(nil)

		s := NewService(repo, new(MockDisputeRepo), new(MockUserRepo))
		created, err := s.Create(claims, validInput())

		assert.NoError(t, err)
		assert.Equal(t, float64(5000), created.TotalAmount)
		assert.Equal(t, created.MilestonesTotal(), created.TotalAmount)
		assert.Equal(t, models.EscrowLocked, created.EscrowStatus)
		assert.NotEmpty(t, created.Reference)
		assert.Len(t, created.Milestones, 3)
		for _, m := range created.Milestones {
			assert.Equal(t, models.MilestonePending, m.Status)
		}
		repo.AssertExpectations(t)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*CreateInput)
			wantErr error
		}{
			{"empty title", func(in *CreateInput) { in.Title = "" }, ErrTitleRequired},
			{"empty description", func(in *CreateInput) { in.Description = "" }, ErrDescriptionRequired},
			{"missing deadline", func(in *CreateInput) { in.Deadline = time.Time{} }, ErrDeadlineRequired},
			{"no milestones", func(in *CreateInput) { in.Milestones = nil }, ErrNoMilestones},
			{"milestone without title", func(in *CreateInput) { in.Milestones[0].Title = "" }, ErrMilestoneTitle},
			{"zero milestone amount", func(in *CreateInput) { in.Milestones[1].Amount = 0 }, ErrMilestoneAmount},
			{"negative milestone amount", func(in *CreateInput) { in.Milestones[1].Amount = -100 }, ErrMilestoneAmount},
			{"milestone without due date", func(in *CreateInput) { in.Milestones[2].DueDate = time.Time{} }, ErrMilestoneDueDate},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(MockProjectRepo)
				s := NewService(repo, new(MockDisputeRepo), new(MockUserRepo))

				input := validInput()
				tt.mutate(&input)

				_, err := s.Create(claims, input)
				assert.ErrorIs(t, err, tt.wantErr)
				// Nothing reaches the store on a validation failure.
				repo.AssertNotCalled(t, "Create", mock.Anything)
			})
		}
	})

	t.Run("freelancer cannot create", func(t *testing.T) {
		s := NewService(new(MockProjectRepo), new(MockDisputeRepo), new(MockUserRepo))
		_, err := s.Create(&models.UserClaims{UserID: 2, Role: models.RoleFreelancer}, validInput())
		assert.ErrorIs(t, err, ErrNotAllowed)
	})
}

func TestGetProject(t *testing.T) {
	stored := &models.Project{
		ClientID:     1,
		TotalAmount:  5000,
		EscrowStatus: models.EscrowLocked,
		Milestones: []models.Milestone{
			{Status: models.MilestoneApproved, Amount: 1500},
			{Status: models.MilestoneSubmitted, Amount: 2500},
			{Status: models.MilestonePending, Amount: 1000},
		},
	}
	stored.ID = 1

	t.Run("disputed overlay when a dispute is active", func(t *testing.T) {
		projects := new(MockProjectRepo)
		disputes := new(MockDisputeRepo)
		projects.On("GetByID", uint(1)).Return(stored, nil)
		disputes.On("ExistsActiveByProjectID", uint(1)).Return(true, nil)

		s := NewService(projects, disputes, new(MockUserRepo))
		view, err := s.Get(&models.UserClaims{UserID: 1, Role: models.RoleClient}, 1)

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowDisputed, view.EffectiveEscrowStatus)
		// The stored status stays locked; disputed is derived only.
		assert.Equal(t, models.EscrowLocked, view.EscrowStatus)
	})

	t.Run("locked view and progress without disputes", func(t *testing.T) {
		projects := new(MockProjectRepo)
		disputes := new(MockDisputeRepo)
		projects.On("GetByID", uint(1)).Return(stored, nil)
		disputes.On("ExistsActiveByProjectID", uint(1)).Return(false, nil)

		s := NewService(projects, disputes, new(MockUserRepo))
		view, err := s.Get(&models.UserClaims{UserID: 1, Role: models.RoleClient}, 1)

		assert.NoError(t, err)
		assert.Equal(t, models.EscrowLocked, view.EffectiveEscrowStatus)
		assert.InDelta(t, 33.33, view.Progress, 0.01)
	})

	t.Run("missing project is a loud error", func(t *testing.T) {
		projects := new(MockProjectRepo)
		projects.On("GetByID", uint(9)).Return(nil, repositories.ErrProjectNotFound)

		s := NewService(projects, new(MockDisputeRepo), new(MockUserRepo))
		_, err := s.Get(&models.UserClaims{UserID: 1, Role: models.RoleClient}, 9)
		assert.ErrorIs(t, err, repositories.ErrProjectNotFound)
	})

	t.Run("unrelated client cannot read", func(t *testing.T) {
		projects := new(MockProjectRepo)
		projects.On("GetByID", uint(1)).Return(stored, nil)

		s := NewService(projects, new(MockDisputeRepo), new(MockUserRepo))
		_, err := s.Get(&models.UserClaims{UserID: 42, Role: models.RoleClient}, 1)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})
}

func TestAssignFreelancer(t *testing.T) {
	claims := &models.UserClaims{UserID: 1, Role: models.RoleClient}

	newProject := func() *models.Project {
		p := &models.Project{ClientID: 1, EscrowStatus: models.EscrowLocked}
		p.ID = 1
		return p
	}

	t.Run("assigns a freelancer", func(t *testing.T) {
		projects := new(MockProjectRepo)
		users := new(MockUserRepo)
		freelancer := &models.User{Role: models.RoleFreelancer}
		freelancer.ID = 2
		projects.On("GetByID", uint(1)).Return(newProject(), nil)
		users.On("GetByID", uint(2)).Return(freelancer, nil)
		projects.On("Update", mock.Anything).Return(nil)

		s := NewService(projects, new(MockDisputeRepo), users)
		updated, err := s.AssignFreelancer(claims, 1, 2)

		assert.NoError(t, err)
		assert.NotNil(t, updated.FreelancerID)
		assert.Equal(t, uint(2), *updated.FreelancerID)
	})

	t.Run("rejects a non-freelancer assignee", func(t *testing.T) {
		projects := new(MockProjectRepo)
		users := new(MockUserRepo)
		client := &models.User{Role: models.RoleClient}
		client.ID = 3
		projects.On("GetByID", uint(1)).Return(newProject(), nil)
		users.On("GetByID", uint(3)).Return(client, nil)

		s := NewService(projects, new(MockDisputeRepo), users)
		_, err := s.AssignFreelancer(claims, 1, 3)
		assert.ErrorIs(t, err, ErrNotAFreelancer)
	})

	t.Run("rejects double assignment", func(t *testing.T) {
		projects := new(MockProjectRepo)
		assigned := newProject()
		existing := uint(5)
		assigned.FreelancerID = &existing
		projects.On("GetByID", uint(1)).Return(assigned, nil)

		s := NewService(projects, new(MockDisputeRepo), new(MockUserRepo))
		_, err := s.AssignFreelancer(claims, 1, 2)
		assert.ErrorIs(t, err, ErrAlreadyAssigned)
	})
}
