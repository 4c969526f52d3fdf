package repositories

import (
	"trustlance/internal/models"

	"gorm.io/gorm"
)

// MessageRepository is append-only: messages are created and listed,
// never updated or deleted.
type MessageRepository interface {
	Create(message *models.Message) error
	ListByProjectID(projectID uint) ([]models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) ListByProjectID(projectID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("project_id = ?", projectID).Order("id").Find(&messages).Error
	return messages, err
}
