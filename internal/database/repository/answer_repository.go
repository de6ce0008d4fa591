package repository

import (
	"github.com/forumhub/forum-hub-backend/internal/models"
	"github.com/forumhub/forum-hub-backend/internal/utils"
	"gorm.io/gorm"
)

type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// Create creates a new answer
func (r *AnswerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

// GetByID retrieves an answer by ID with its author and parent topic
func (r *AnswerRepository) GetByID(id uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.db.Preload("Author").Preload("Topic").Preload("Topic.Author").
		First(&answer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// GetByTopicPaginated retrieves a topic's answers ordered by creation time descending
func (r *AnswerRepository) GetByTopicPaginated(topicID uint, page, pageSize int) ([]models.Answer, int64, error) {
	var answers []models.Answer
	var total int64
	query := r.db.Model(&models.Answer{}).Where("topic_id = ?", topicID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Author").
		Order("created_at DESC").
		Offset(utils.CalculateOffset(page, pageSize)).Limit(pageSize).
		Find(&answers).Error
	if err != nil {
		return nil, 0, err
	}
	return answers, total, nil
}

// Update persists changes to an answer
func (r *AnswerRepository) Update(answer *models.Answer) error {
	return r.db.Save(answer).Error
}

// Delete deletes an answer by ID
func (r *AnswerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Answer{}, "id = ?", id).Error
}

// DeleteByTopic deletes every answer belonging to a topic
func (r *AnswerRepository) DeleteByTopic(topicID uint) error {
	return r.db.Delete(&models.Answer{}, "topic_id = ?", topicID).Error
}
