package repositories

import (
	"context"
	"log"

	"trustlance/internal/models"
	"trustlance/internal/repositories/cache"

	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project persistence.
// Milestones are owned by their project and always read through it.
type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	Update(project *models.Project) error
	ListByClient(clientID uint) ([]models.Project, error)
	ListByFreelancer(freelancerID uint) ([]models.Project, error)
	ListAll() ([]models.Project, error)

	GetMilestone(projectID, milestoneID uint) (*models.Milestone, error)
	SaveMilestone(milestone *models.Milestone) error
}

type projectRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB, cache *cache.CacheService) ProjectRepository {
	return &projectRepository{db: db, cache: cache}
}

func (r *projectRepository) Create(project *models.Project) error {
	// One insert covers the project and its milestones; a partially
	// created project is never visible.
	if err := r.db.Create(project).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *projectRepository) GetByID(id uint) (*models.Project, error) {
	if project, found, err := r.cache.GetProject(context.Background(), id); err == nil && found {
		return project, nil
	}

	var project models.Project
	err := r.db.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("milestones.id")
	}).First(&project, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if err := r.cache.CacheProject(context.Background(), &project); err != nil {
		log.Printf("Failed to cache project %d: %v", project.ID, err)
	}

	return &project, nil
}

func (r *projectRepository) Update(project *models.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.invalidate(project.ID)
	return nil
}

func (r *projectRepository) ListByClient(clientID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Milestones").Where("client_id = ?", clientID).
		Order("id").Find(&projects).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return projects, nil
}

func (r *projectRepository) ListByFreelancer(freelancerID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Milestones").Where("freelancer_id = ?", freelancerID).
		Order("id").Find(&projects).Error
	if err != nil {
		return nil, ErrDatabaseOperation
	}
	return projects, nil
}

func (r *projectRepository) ListAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("Milestones").Order("id").Find(&projects).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return projects, nil
}

func (r *projectRepository) GetMilestone(projectID, milestoneID uint) (*models.Milestone, error) {
	var milestone models.Milestone
	err := r.db.Where("project_id = ?", projectID).First(&milestone, milestoneID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrMilestoneNotFound
		}
		return nil, err
	}
	return &milestone, nil
}

func (r *projectRepository) SaveMilestone(milestone *models.Milestone) error {
	if err := r.db.Save(milestone).Error; err != nil {
		return ErrDatabaseOperation
	}
	r.invalidate(milestone.ProjectID)
	return nil
}

func (r *projectRepository) invalidate(projectID uint) {
	if err := r.cache.InvalidateProject(context.Background(), projectID); err != nil {
		log.Printf("Warning: Failed to invalidate project cache: %v", err)
	}
}
