package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/forumhub/forum-hub-backend/internal/middleware"
	"github.com/forumhub/forum-hub-backend/internal/models"
	"github.com/forumhub/forum-hub-backend/internal/services"
	"github.com/forumhub/forum-hub-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TopicHandler struct {
	topicService *services.TopicService
}

func NewTopicHandler(db *gorm.DB) *TopicHandler {
	return &TopicHandler{
		topicService: services.NewTopicService(db),
	}
}

// CreateTopic godoc
// @Summary Create a new topic
// @Description Create a discussion topic authored by the caller
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateTopicRequest true "Create topic request"
// @Success 201 {object} models.TopicResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /topics [post]
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	var req models.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		respondError(c, models.NewValidationError(fields))
		return
	}

	topic, err := h.topicService.CreateTopic(principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/topics/%d", topic.ID))
	c.JSON(http.StatusCreated, models.NewTopicResponse(topic))
}

// GetTopics godoc
// @Summary List topics
// @Description List topics ordered by creation time descending, paginated
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)" minimum(1)
// @Param limit query int false "Number of items per page (default: 20, max: 100)" minimum(1) maximum(100)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Router /topics [get]
func (h *TopicHandler) GetTopics(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("limit"))

	topics, total, err := h.topicService.GetTopicsPaginated(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]*models.TopicResponse, len(topics))
	for i := range topics {
		data[i] = models.NewTopicResponse(&topics[i])
	}

	paginationInfo := utils.CalculatePaginationInfo(total, page, pageSize)
	c.JSON(http.StatusOK, gin.H{
		"data":         data,
		"total":        paginationInfo.Total,
		"page":         paginationInfo.Page,
		"limit":        paginationInfo.PageSize,
		"total_pages":  paginationInfo.TotalPages,
		"has_next":     paginationInfo.HasNext,
		"has_previous": paginationInfo.HasPrevious,
	})
}

// GetTopicByID godoc
// @Summary Get topic by ID
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 200 {object} models.TopicResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /topics/{id} [get]
func (h *TopicHandler) GetTopicByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	topic, err := h.topicService.GetTopicByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTopicResponse(topic))
}

// UpdateTopic godoc
// @Summary Update topic
// @Description Update a topic's title, message and course; only the author may do so
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param request body models.CreateTopicRequest true "Update topic request"
// @Success 200 {object} models.TopicResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /topics/{id} [put]
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		respondError(c, models.NewValidationError(fields))
		return
	}

	topic, err := h.topicService.UpdateTopic(principal, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTopicResponse(topic))
}

// DeleteTopic godoc
// @Summary Delete topic
// @Description Hard-delete a topic and its answers; only the author may do so
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 204 "No Content"
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /topics/{id} [delete]
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.topicService.DeleteTopic(principal, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTopicAnswers godoc
// @Summary List answers for a topic
// @Description List a topic's answers ordered by creation time descending, paginated
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param page query int false "Page number (default: 1)" minimum(1)
// @Param limit query int false "Number of items per page (default: 20, max: 100)" minimum(1) maximum(100)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /topics/{id}/answers [get]
func (h *TopicHandler) GetTopicAnswers(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("limit"))

	answers, total, err := h.topicService.GetTopicAnswersPaginated(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]*models.AnswerResponse, len(answers))
	for i := range answers {
		data[i] = models.NewAnswerResponse(&answers[i])
	}

	paginationInfo := utils.CalculatePaginationInfo(total, page, pageSize)
	c.JSON(http.StatusOK, gin.H{
		"data":         data,
		"total":        paginationInfo.Total,
		"page":         paginationInfo.Page,
		"limit":        paginationInfo.PageSize,
		"total_pages":  paginationInfo.TotalPages,
		"has_next":     paginationInfo.HasNext,
		"has_previous": paginationInfo.HasPrevious,
	})
}

// parseIDParam reads the numeric :id path parameter, responding 400 on
// malformed input
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Bad Request", "Invalid id parameter", nil)
		return 0, false
	}
	return uint(id), true
}
