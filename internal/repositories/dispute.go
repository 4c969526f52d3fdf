package repositories

import (
	"trustlance/internal/models"

	"gorm.io/gorm"
)

type DisputeRepository interface {
	Create(dispute *models.Dispute) error
	FindByID(id uint) (*models.Dispute, error)
	FindByProjectID(projectID uint) ([]models.Dispute, error)
	ExistsActiveByProjectID(projectID uint) (bool, error)
	ListActive() ([]models.Dispute, error)
	ListResolved() ([]models.Dispute, error)
	Update(dispute *models.Dispute) error
}

type disputeRepository struct {
	db *gorm.DB
}

func NewDisputeRepository(db *gorm.DB) DisputeRepository {
	return &disputeRepository{db: db}
}

func (r *disputeRepository) Create(dispute *models.Dispute) error {
	return r.db.Create(dispute).Error
}

func (r *disputeRepository) FindByID(id uint) (*models.Dispute, error) {
	var dispute models.Dispute
	if err := r.db.First(&dispute, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDisputeNotFound
		}
		return nil, err
	}
	return &dispute, nil
}

func (r *disputeRepository) FindByProjectID(projectID uint) ([]models.Dispute, error) {
	var disputes []models.Dispute
	err := r.db.Where("project_id = ?", projectID).Order("id").Find(&disputes).Error
	return disputes, err
}

func (r *disputeRepository) ExistsActiveByProjectID(projectID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Dispute{}).
		Where("project_id = ? AND status <> ?", projectID, models.DisputeResolved).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *disputeRepository) ListActive() ([]models.Dispute, error) {
	var disputes []models.Dispute
	err := r.db.Where("status <> ?", models.DisputeResolved).Order("id").Find(&disputes).Error
	return disputes, err
}

func (r *disputeRepository) ListResolved() ([]models.Dispute, error) {
	var disputes []models.Dispute
	err := r.db.Where("status = ?", models.DisputeResolved).Order("id").Find(&disputes).Error
	return disputes, err
}

func (r *disputeRepository) Update(dispute *models.Dispute) error {
	return r.db.Save(dispute).Error
}
