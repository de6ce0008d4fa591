package handlers

import (
	"fmt"
	"net/http"

	"github.com/forumhub/forum-hub-backend/internal/middleware"
	"github.com/forumhub/forum-hub-backend/internal/models"
	"github.com/forumhub/forum-hub-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnswerHandler struct {
	answerService *services.AnswerService
}

func NewAnswerHandler(db *gorm.DB) *AnswerHandler {
	return &AnswerHandler{
		answerService: services.NewAnswerService(db),
	}
}

// CreateAnswer godoc
// @Summary Post an answer
// @Description Post a reply to an existing topic, authored by the caller
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateAnswerRequest true "Create answer request"
// @Success 201 {object} models.AnswerResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /answers [post]
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	var req models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		respondError(c, models.NewValidationError(fields))
		return
	}

	answer, err := h.answerService.CreateAnswer(principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/answers/%d", answer.ID))
	c.JSON(http.StatusCreated, models.NewAnswerResponse(answer))
}

// UpdateAnswer godoc
// @Summary Update an answer
// @Description Edit an answer's message; only its author may do so
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Param request body models.UpdateAnswerRequest true "Update answer request"
// @Success 200 {object} models.AnswerResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /answers/{id} [put]
func (h *AnswerHandler) UpdateAnswer(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		respondError(c, models.NewValidationError(fields))
		return
	}

	answer, err := h.answerService.UpdateAnswer(principal, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewAnswerResponse(answer))
}

// DeleteAnswer godoc
// @Summary Delete an answer
// @Description Remove an answer; only its author may do so
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Success 204 "No Content"
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /answers/{id} [delete]
func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.answerService.DeleteAnswer(principal, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkSolution godoc
// @Summary Mark an answer as the solution
// @Description Flag the answer as the topic's solution and close the topic; only the topic author may do so
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Success 200 {object} models.AnswerResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /answers/{id}/solution [patch]
func (h *AnswerHandler) MarkSolution(c *gin.Context) {
	principal := middleware.CurrentPrincipal(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	answer, err := h.answerService.MarkSolution(principal, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewAnswerResponse(answer))
}
