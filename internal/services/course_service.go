package services

import (
	"fmt"

	"github.com/forumhub/forum-hub-backend/internal/database/repository"
	"github.com/forumhub/forum-hub-backend/internal/models"

	"gorm.io/gorm"
)

type CourseService struct {
	db         *gorm.DB
	courseRepo *repository.CourseRepository
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{
		db:         db,
		courseRepo: repository.NewCourseRepository(db),
	}
}

// CreateCourse adds a course to the catalog; names are unique
func (s *CourseService) CreateCourse(req *models.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:     req.Name,
		Category: req.Category,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		courseRepo := repository.NewCourseRepository(tx)

		exists, err := courseRepo.ExistsByName(req.Name)
		if err != nil {
			return fmt.Errorf("failed to check course name: %w", err)
		}
		if exists {
			return &models.ConflictError{Message: "Course name already exists"}
		}

		if err := courseRepo.Create(course); err != nil {
			return fmt.Errorf("failed to create course: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return course, nil
}

// GetAllCourses lists the course catalog
func (s *CourseService) GetAllCourses() ([]models.Course, error) {
	courses, err := s.courseRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	return courses, nil
}
