package services

import (
	"errors"
	"fmt"

	"github.com/forumhub/forum-hub-backend/internal/database/repository"
	"github.com/forumhub/forum-hub-backend/internal/models"

	"gorm.io/gorm"
)

type TopicService struct {
	db         *gorm.DB
	topicRepo  *repository.TopicRepository
	answerRepo *repository.AnswerRepository
}

func NewTopicService(db *gorm.DB) *TopicService {
	return &TopicService{
		db:         db,
		topicRepo:  repository.NewTopicRepository(db),
		answerRepo: repository.NewAnswerRepository(db),
	}
}

// CreateTopic creates a topic authored by the caller. Title and message must
// be unused anywhere in the store and the course must exist.
func (s *TopicService) CreateTopic(principal *models.Principal, req *models.CreateTopicRequest) (*models.Topic, error) {
	var topicID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		topicRepo := repository.NewTopicRepository(tx)
		courseRepo := repository.NewCourseRepository(tx)

		exists, err := topicRepo.ExistsByTitle(req.Title)
		if err != nil {
			return fmt.Errorf("failed to check title: %w", err)
		}
		if exists {
			return &models.ConflictError{Message: "Title already exists"}
		}

		exists, err = topicRepo.ExistsByMessage(req.Message)
		if err != nil {
			return fmt.Errorf("failed to check message: %w", err)
		}
		if exists {
			return &models.ConflictError{Message: "Message already exists"}
		}

		if _, err := courseRepo.GetByID(req.CourseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Message: fmt.Sprintf("Course not found with id: %d", req.CourseID)}
			}
			return fmt.Errorf("failed to load course: %w", err)
		}

		topic := &models.Topic{
			Title:    req.Title,
			Message:  req.Message,
			Status:   models.TopicStatusOpen,
			AuthorID: principal.UserID,
			CourseID: req.CourseID,
		}
		if err := topicRepo.Create(topic); err != nil {
			return fmt.Errorf("failed to create topic: %w", err)
		}
		topicID = topic.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.topicRepo.GetByID(topicID)
}

// GetTopicByID retrieves a single topic
func (s *TopicService) GetTopicByID(id uint) (*models.Topic, error) {
	topic, err := s.topicRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Message: fmt.Sprintf("Topic not found with id: %d", id)}
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return topic, nil
}

// GetTopicsPaginated lists topics ordered by creation time descending
func (s *TopicService) GetTopicsPaginated(page, pageSize int) ([]models.Topic, int64, error) {
	topics, total, err := s.topicRepo.GetAllPaginated(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get topics: %w", err)
	}
	return topics, total, nil
}

// UpdateTopic updates title, message and course of a topic owned by the
// caller. Uniqueness is only re-checked for values that actually change, so
// saving a topic over itself never conflicts.
func (s *TopicService) UpdateTopic(principal *models.Principal, id uint, req *models.UpdateTopicRequest) (*models.Topic, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		topicRepo := repository.NewTopicRepository(tx)
		courseRepo := repository.NewCourseRepository(tx)

		topic, err := topicRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Message: fmt.Sprintf("Topic not found with id: %d", id)}
			}
			return fmt.Errorf("failed to get topic: %w", err)
		}

		if topic.AuthorID != principal.UserID {
			return &models.ForbiddenError{Message: "Only the topic author can update it"}
		}

		if topic.Title != req.Title {
			exists, err := topicRepo.ExistsByTitle(req.Title)
			if err != nil {
				return fmt.Errorf("failed to check title: %w", err)
			}
			if exists {
				return &models.ConflictError{Message: "Title already exists"}
			}
		}
		if topic.Message != req.Message {
			exists, err := topicRepo.ExistsByMessage(req.Message)
			if err != nil {
				return fmt.Errorf("failed to check message: %w", err)
			}
			if exists {
				return &models.ConflictError{Message: "Message already exists"}
			}
		}

		if topic.CourseID != req.CourseID {
			if _, err := courseRepo.GetByID(req.CourseID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &models.NotFoundError{Message: fmt.Sprintf("Course not found with id: %d", req.CourseID)}
				}
				return fmt.Errorf("failed to load course: %w", err)
			}
		}

		topic.Title = req.Title
		topic.Message = req.Message
		topic.CourseID = req.CourseID
		if err := topicRepo.Update(topic); err != nil {
			return fmt.Errorf("failed to update topic: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.topicRepo.GetByID(id)
}

// DeleteTopic hard-deletes a topic owned by the caller together with its
// answers
func (s *TopicService) DeleteTopic(principal *models.Principal, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		topicRepo := repository.NewTopicRepository(tx)
		answerRepo := repository.NewAnswerRepository(tx)

		topic, err := topicRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Message: fmt.Sprintf("Topic not found with id: %d", id)}
			}
			return fmt.Errorf("failed to get topic: %w", err)
		}

		if topic.AuthorID != principal.UserID {
			return &models.ForbiddenError{Message: "Only the topic author can delete it"}
		}

		if err := answerRepo.DeleteByTopic(id); err != nil {
			return fmt.Errorf("failed to delete answers: %w", err)
		}
		if err := topicRepo.Delete(id); err != nil {
			return fmt.Errorf("failed to delete topic: %w", err)
		}
		return nil
	})
}

// GetTopicAnswersPaginated lists a topic's answers ordered by creation time
// descending
func (s *TopicService) GetTopicAnswersPaginated(topicID uint, page, pageSize int) ([]models.Answer, int64, error) {
	if _, err := s.topicRepo.GetByID(topicID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, &models.NotFoundError{Message: fmt.Sprintf("Topic not found with id: %d", topicID)}
		}
		return nil, 0, fmt.Errorf("failed to get topic: %w", err)
	}

	answers, total, err := s.answerRepo.GetByTopicPaginated(topicID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get answers: %w", err)
	}
	return answers, total, nil
}
