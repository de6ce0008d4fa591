package handlers

import (
	"fmt"
	"net/http"

	"github.com/forumhub/forum-hub-backend/internal/models"
	"github.com/forumhub/forum-hub-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CourseHandler struct {
	courseService *services.CourseService
}

func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{
		courseService: services.NewCourseService(db),
	}
}

// CreateCourse godoc
// @Summary Create a course
// @Description Add a course to the catalog; names are unique
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCourseRequest true "Create course request"
// @Success 201 {object} models.Course
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		respondError(c, models.NewValidationError(fields))
		return
	}

	course, err := h.courseService.CreateCourse(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/courses/%d", course.ID))
	c.JSON(http.StatusCreated, course)
}

// GetCourses godoc
// @Summary List courses
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course
// @Failure 401 {object} models.ErrorResponse
// @Router /courses [get]
func (h *CourseHandler) GetCourses(c *gin.Context) {
	courses, err := h.courseService.GetAllCourses()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}
