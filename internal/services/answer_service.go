package services

import (
	"errors"
	"fmt"

	"github.com/forumhub/forum-hub-backend/internal/database/repository"
	"github.com/forumhub/forum-hub-backend/internal/models"

	"gorm.io/gorm"
)

type AnswerService struct {
	db         *gorm.DB
	answerRepo *repository.AnswerRepository
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{
		db:         db,
		answerRepo: repository.NewAnswerRepository(db),
	}
}

// CreateAnswer posts a reply to an existing topic, authored by the caller
func (s *AnswerService) CreateAnswer(principal *models.Principal, req *models.CreateAnswerRequest) (*models.Answer, error) {
	var answerID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		answerRepo := repository.NewAnswerRepository(tx)
		topicRepo := repository.NewTopicRepository(tx)

		if _, err := topicRepo.GetByID(req.TopicID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Message: fmt.Sprintf("Topic not found with id: %d", req.TopicID)}
			}
			return fmt.Errorf("failed to load topic: %w", err)
		}

		answer := &models.Answer{
			Message:  req.Message,
			AuthorID: principal.UserID,
			TopicID:  req.TopicID,
		}
		if err := answerRepo.Create(answer); err != nil {
			return fmt.Errorf("failed to create answer: %w", err)
		}
		answerID = answer.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.answerRepo.GetByID(answerID)
}

// UpdateAnswer edits an answer's message; only its author may do so
func (s *AnswerService) UpdateAnswer(principal *models.Principal, id uint, req *models.UpdateAnswerRequest) (*models.Answer, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		answerRepo := repository.NewAnswerRepository(tx)

		answer, err := answerRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Message: fmt.Sprintf("Answer not found with id: %d", id)}
			}
			return fmt.Errorf("failed to get answer: %w", err)
		}

		if answer.AuthorID != principal.UserID {
			return &models.ForbiddenError{Message: "Only the answer author can update it"}
		}

		answer.Message = req.Message
		if err := answerRepo.Update(answer); err != nil {
			return fmt.Errorf("failed to update answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.answerRepo.GetByID(id)
}

// DeleteAnswer removes an answer; only its author may do so
func (s *AnswerService) DeleteAnswer(principal *models.Principal, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		answerRepo := repository.NewAnswerRepository(tx)

		answer, err := answerRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Message: fmt.Sprintf("Answer not found with id: %d", id)}
			}
			return fmt.Errorf("failed to get answer: %w", err)
		}

		if answer.AuthorID != principal.UserID {
			return &models.ForbiddenError{Message: "Only the answer author can delete it"}
		}

		if err := answerRepo.Delete(id); err != nil {
			return fmt.Errorf("failed to delete answer: %w", err)
		}
		return nil
	})
}

// MarkSolution flags an answer as the solution and closes its parent topic.
// Only the topic's author may accept a solution; the answer's author has no
// say. Both writes commit atomically, so a forbidden caller mutates nothing.
func (s *AnswerService) MarkSolution(principal *models.Principal, id uint) (*models.Answer, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		answerRepo := repository.NewAnswerRepository(tx)
		topicRepo := repository.NewTopicRepository(tx)

		answer, err := answerRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &models.NotFoundError{Message: fmt.Sprintf("Answer not found with id: %d", id)}
			}
			return fmt.Errorf("failed to get answer: %w", err)
		}

		topic, err := topicRepo.GetByID(answer.TopicID)
		if err != nil {
			return fmt.Errorf("failed to load topic: %w", err)
		}

		if topic.AuthorID != principal.UserID {
			return &models.ForbiddenError{Message: "Only the topic author can accept a solution"}
		}

		answer.Solution = true
		if err := answerRepo.Update(answer); err != nil {
			return fmt.Errorf("failed to update answer: %w", err)
		}

		topic.Status = models.TopicStatusClosed
		if err := topicRepo.Update(topic); err != nil {
			return fmt.Errorf("failed to close topic: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.answerRepo.GetByID(id)
}
