package handlers

import (
	"net/http"

	"github.com/forumhub/forum-hub-backend/internal/models"
	"github.com/forumhub/forum-hub-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *auth.AuthService
}

func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account with the default profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 "Created"
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		respondError(c, models.NewValidationError(fields))
		return
	}

	if err := h.authService.Register(&req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// Login godoc
// @Summary Obtain a token
// @Description Authenticate with username and password and receive a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedBody(c, err)
		return
	}
	if fields := req.Validate(); len(fields) > 0 {
		respondError(c, models.NewValidationError(fields))
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
