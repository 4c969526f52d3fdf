package dispute

import (
	"testing"
	"time"

	"trustlance/internal/models"
	"trustlance/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

func ownedProject() *models.Project {
	p := &models.Project{ClientID: 1, EscrowStatus: models.EscrowLocked}
	p.ID = 1
	return p
}

func TestRaiseDispute(t *testing.T) {
	client := &models.UserClaims{UserID: 1, Role: models.RoleClient}

	t.Run("opens a dispute on an owned project", func(t *testing.T) {
		disputes := new(MockDisputeRepo)
		projects := new(MockProjectRepo)
		projects.On("GetByID", uint(1)).Return(ownedProject(), nil)
		disputes.On("ExistsActiveByProjectID", uint(1)).Return(false, nil)
		disputes.On("Create", mock.Anything).Return(nil)

		s := NewService(disputes, projects)
		d, err := s.Raise(client, 1, "Work quality below agreement")

		assert.NoError(t, err)
		assert.Equal(t, models.DisputeOpen, d.Status)
		assert.Equal(t, uint(1), d.RaisedBy)
		assert.Equal(t, "Work quality below agreement", d.Reason)
		assert.NotEmpty(t, d.Reference)
		assert.Nil(t, d.ResolvedAt)
		disputes.AssertExpectations(t)
	})

	t.Run("rejects a second active dispute on the same project", func(t *testing.T) {
		disputes := new(MockDisputeRepo)
		projects := new(MockProjectRepo)
		projects.On("GetByID", uint(1)).Return(ownedProject(), nil)
		disputes.On("ExistsActiveByProjectID", uint(1)).Return(true, nil)

		s := NewService(disputes, projects)
		_, err := s.Raise(client, 1, "Second complaint")

		assert.ErrorIs(t, err, ErrActiveDispute)
		disputes.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects an empty reason before touching the store", func(t *testing.T) {
		disputes := new(MockDisputeRepo)
		projects := new(MockProjectRepo)

		s := NewService(disputes, projects)
		_, err := s.Raise(client, 1, "")

		assert.ErrorIs(t, err, ErrReasonRequired)
		projects.AssertNotCalled(t, "GetByID", mock.Anything)
	})

	t.Run("actor checks", func(t *testing.T) {
		tests := []struct {
			name   string
			claims *models.UserClaims
		}{
			{"freelancer cannot raise", &models.UserClaims{UserID: 2, Role: models.RoleFreelancer}},
			{"admin cannot raise", &models.UserClaims{UserID: 9, Role: models.RoleAdmin}},
			{"other client cannot raise", &models.UserClaims{UserID: 42, Role: models.RoleClient}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				disputes := new(MockDisputeRepo)
				projects := new(MockProjectRepo)
				projects.On("GetByID", uint(1)).Return(ownedProject(), nil)

				s := NewService(disputes, projects)
				_, err := s.Raise(tt.claims, 1, "Deliverable missing")
				assert.ErrorIs(t, err, ErrNotAllowed)
			})
		}
	})

	t.Run("missing project is a loud error", func(t *testing.T) {
		disputes := new(MockDisputeRepo)
		projects := new(MockProjectRepo)
		projects.On("GetByID", uint(9)).Return(nil, repositories.ErrProjectNotFound)

		s := NewService(disputes, projects)
		_, err := s.Raise(client, 9, "Missing deliverable")
		assert.ErrorIs(t, err, repositories.ErrProjectNotFound)
	})
}

func TestResolveDispute(t *testing.T) {
	admin := &models.UserClaims{UserID: 99, Role: models.RoleAdmin}

	openDispute := func() *models.Dispute {
		d := &models.Dispute{ProjectID: 1, RaisedBy: 1, Reason: "Late delivery", Status: models.DisputeOpen}
		d.ID = 7
		return d
	}

	t.Run("admin resolves with a resolution", func(t *testing.T) {
		disputes := new(MockDisputeRepo)
		disputes.On("FindByID", uint(7)).Return(openDispute(), nil)
		disputes.On("Update", mock.Anything).Return(nil)

		s := NewService(disputes, new(MockProjectRepo))
		d, err := s.Resolve(admin, 7, "Refund 50% to client")

		assert.NoError(t, err)
		assert.Equal(t, models.DisputeResolved, d.Status)
		assert.Equal(t, "Refund 50% to client", d.Resolution)
		assert.NotNil(t, d.ResolvedAt)
	})

	t.Run("resolving twice leaves the original resolution untouched", func(t *testing.T) {
		resolvedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
		resolved := openDispute()
		resolved.Status = models.DisputeResolved
		resolved.Resolution = "Refund 50% to client"
		resolved.ResolvedAt = &resolvedAt

		disputes := new(MockDisputeRepo)
		disputes.On("FindByID", uint(7)).Return(resolved, nil)

		s := NewService(disputes, new(MockProjectRepo))
		_, err := s.Resolve(admin, 7, "Different outcome")

		assert.ErrorIs(t, err, ErrAlreadyResolved)
		assert.Equal(t, "Refund 50% to client", resolved.Resolution)
		assert.Equal(t, resolvedAt, *resolved.ResolvedAt)
		disputes.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("only admins resolve", func(t *testing.T) {
		s := NewService(new(MockDisputeRepo), new(MockProjectRepo))
		_, err := s.Resolve(&models.UserClaims{UserID: 1, Role: models.RoleClient}, 7, "Attempted resolution")
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("resolution text is required", func(t *testing.T) {
		s := NewService(new(MockDisputeRepo), new(MockProjectRepo))
		_, err := s.Resolve(admin, 7, "")
		assert.ErrorIs(t, err, ErrResolutionRequired)
	})

	t.Run("unknown dispute is a loud error", func(t *testing.T) {
		disputes := new(MockDisputeRepo)
		disputes.On("FindByID", uint(404)).Return(nil, repositories.ErrDisputeNotFound)

		s := NewService(disputes, new(MockProjectRepo))
		_, err := s.Resolve(admin, 404, "Refund in full")
		assert.ErrorIs(t, err, repositories.ErrDisputeNotFound)
	})
}

func TestListDisputes(t *testing.T) {
	admin := &models.UserClaims{UserID: 99, Role: models.RoleAdmin}

	t.Run("active and resolved queues are admin only", func(t *testing.T) {
		disputes := new(MockDisputeRepo)
		disputes.On("ListActive").Return([]models.Dispute{{Status: models.DisputeOpen}}, nil)
		disputes.On("ListResolved").Return([]models.Dispute{}, nil)

		s := NewService(disputes, new(MockProjectRepo))

		active, err := s.ListActive(admin)
		assert.NoError(t, err)
		assert.Len(t, active, 1)

		resolved, err := s.ListResolved(admin)
		assert.NoError(t, err)
		assert.Empty(t, resolved)

		client := &models.UserClaims{UserID: 1, Role: models.RoleClient}
		_, err = s.ListActive(client)
		assert.ErrorIs(t, err, ErrNotAllowed)
		_, err = s.ListResolved(client)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("project participants can list project disputes", func(t *testing.T) {
		freelancerID := uint(2)
		p := ownedProject()
		p.FreelancerID = &freelancerID

		disputes := new(MockDisputeRepo)
		projects := new(MockProjectRepo)
		projects.On("GetByID", uint(1)).Return(p, nil)
		disputes.On("FindByProjectID", uint(1)).Return([]models.Dispute{{ProjectID: 1}}, nil)

		s := NewService(disputes, projects)

		list, err := s.ListForProject(&models.UserClaims{UserID: 2, Role: models.RoleFreelancer}, 1)
		assert.NoError(t, err)
		assert.Len(t, list, 1)

		_, err = s.ListForProject(&models.UserClaims{UserID: 5, Role: models.RoleFreelancer}, 1)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})
}
