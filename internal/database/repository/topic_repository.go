package repository

import (
	"github.com/forumhub/forum-hub-backend/internal/models"
	"github.com/forumhub/forum-hub-backend/internal/utils"
	"gorm.io/gorm"
)

type TopicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// Create creates a new topic
func (r *TopicRepository) Create(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

// GetByID retrieves a topic by ID with its author and course
func (r *TopicRepository) GetByID(id uint) (*models.Topic, error) {
	var topic models.Topic
	err := r.db.Preload("Author").Preload("Course").First(&topic, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// ExistsByTitle checks if any topic already carries the given title
func (r *TopicRepository) ExistsByTitle(title string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Topic{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

// ExistsByMessage checks if any topic already carries the given message
func (r *TopicRepository) ExistsByMessage(message string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Topic{}).Where("message = ?", message).Count(&count).Error
	return count > 0, err
}

// GetAllPaginated retrieves topics ordered by creation time descending
func (r *TopicRepository) GetAllPaginated(page, pageSize int) ([]models.Topic, int64, error) {
	var topics []models.Topic
	var total int64
	query := r.db.Model(&models.Topic{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Author").Preload("Course").
		Order("created_at DESC").
		Offset(utils.CalculateOffset(page, pageSize)).Limit(pageSize).
		Find(&topics).Error
	if err != nil {
		return nil, 0, err
	}
	return topics, total, nil
}

// GetAll retrieves every topic with its author, course and answers, newest first
func (r *TopicRepository) GetAll() ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.Preload("Author").Preload("Course").Preload("Answers").
		Order("created_at DESC").Find(&topics).Error
	return topics, err
}

// Update persists changes to a topic
func (r *TopicRepository) Update(topic *models.Topic) error {
	return r.db.Save(topic).Error
}

// Delete deletes a topic by ID
func (r *TopicRepository) Delete(id uint) error {
	return r.db.Delete(&models.Topic{}, "id = ?", id).Error
}
