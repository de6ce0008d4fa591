package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/forumhub/forum-hub-backend/internal/models"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError is the single translation point from typed operation errors to
// transport status codes. Services never pick status codes themselves.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	var conflictErr *models.ConflictError
	var forbiddenErr *models.ForbiddenError
	var unauthorizedErr *models.UnauthorizedError

	switch {
	case errors.As(err, &validationErr):
		writeError(c, http.StatusBadRequest, "Bad Request", "Validation failed for fields", validationErr.Fields)
	case errors.As(err, &notFoundErr):
		writeError(c, http.StatusNotFound, "Not Found", notFoundErr.Message, nil)
	case errors.As(err, &conflictErr):
		writeError(c, http.StatusConflict, "Conflict", conflictErr.Message, nil)
	case errors.As(err, &forbiddenErr):
		writeError(c, http.StatusForbidden, "Forbidden", "Access denied. You do not have permission to perform this operation.", nil)
	case errors.As(err, &unauthorizedErr):
		writeError(c, http.StatusUnauthorized, "Unauthorized", unauthorizedErr.Message, nil)
	default:
		respondStoreError(c, err)
	}
}

// respondStoreError classifies errors that escaped the advisory pre-checks
// and surfaced from the database constraints, falling back to 500.
func respondStoreError(c *gin.Context, err error) {
	detail := err.Error()
	switch {
	case strings.Contains(detail, "duplicate key value") ||
		strings.Contains(detail, "UNIQUE constraint failed"):
		writeError(c, http.StatusConflict, "Conflict", "Duplicate entry detected: "+detail, nil)
	case strings.Contains(detail, "foreign key constraint") ||
		strings.Contains(detail, "FOREIGN KEY constraint failed"):
		writeError(c, http.StatusConflict, "Conflict", "Cannot add or update resource: foreign key constraint fails.", nil)
	default:
		logrus.WithError(err).Error("Unhandled error")
		sentry.CaptureException(err)
		writeError(c, http.StatusInternalServerError, "Internal Server Error",
			"An unexpected error occurred: "+detail, nil)
	}
}

// respondMalformedBody maps a JSON decoding failure to 400, keeping only the
// first clause of the parse error
func respondMalformedBody(c *gin.Context, err error) {
	clause := strings.SplitN(err.Error(), ";", 2)[0]
	writeError(c, http.StatusBadRequest, "Bad Request", "Malformed JSON request body: "+clause, nil)
}

func writeError(c *gin.Context, status int, label, message string, fields map[string]string) {
	c.JSON(status, models.ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     label,
		Message:   message,
		Path:      c.Request.URL.Path,
		Fields:    fields,
	})
}
