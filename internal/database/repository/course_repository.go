package repository

import (
	"github.com/forumhub/forum-hub-backend/internal/models"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create creates a new course
func (r *CourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// ExistsByName checks if a course name is already taken
func (r *CourseRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Course{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// GetAll retrieves all courses ordered by name
func (r *CourseRepository) GetAll() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Order("name ASC").Find(&courses).Error
	return courses, err
}
