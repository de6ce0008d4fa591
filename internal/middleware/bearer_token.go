package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/forumhub/forum-hub-backend/internal/models"
	"github.com/forumhub/forum-hub-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

// principalKey is the gin context key carrying the request-scoped identity
const principalKey = "principal"

type BearerTokenMiddleware struct {
	authService *auth.AuthService
}

func NewBearerTokenMiddleware(authService *auth.AuthService) *BearerTokenMiddleware {
	return &BearerTokenMiddleware{authService: authService}
}

// BearerTokenAuthMiddleware verifies the bearer token and attaches the
// resolved principal to the request context. Requests without a valid token
// are rejected with 401 before reaching any handler in the protected group.
func (m *BearerTokenMiddleware) BearerTokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		principal, err := m.authService.Authenticate(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// CurrentPrincipal returns the identity attached by the auth middleware.
// It panics when called outside the protected route group.
func CurrentPrincipal(c *gin.Context) *models.Principal {
	return c.MustGet(principalKey).(*models.Principal)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusUnauthorized,
		Error:     "Unauthorized",
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}
