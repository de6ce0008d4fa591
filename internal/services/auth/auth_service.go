package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/forumhub/forum-hub-backend/internal/database/repository"
	"github.com/forumhub/forum-hub-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tokenIssuer is checked on every verification; tokens minted elsewhere are
// rejected even when signed with the same secret.
const tokenIssuer = "forum-hub-backend"

type AuthService struct {
	db        *gorm.DB
	userRepo  *repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB) *AuthService {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		jwtSecret = []byte("default-secret-key-change-in-production")
	}

	// Token lifetime is fixed per deployment, never per call.
	tokenTTL := 2 * time.Hour
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			tokenTTL = parsed
		}
	}
	logrus.Infof("Token TTL: %s", tokenTTL)

	return &AuthService{
		db:        db,
		userRepo:  repository.NewUserRepository(db),
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new account with a bcrypt-hashed password and the
// default profile. Username and email must be unused.
func (s *AuthService) Register(req *models.RegisterRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		profileRepo := repository.NewProfileRepository(tx)

		exists, err := userRepo.ExistsByUsername(req.Username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return &models.ConflictError{Message: "Username already exists."}
		}

		exists, err = userRepo.ExistsByEmail(req.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return &models.ConflictError{Message: "Email already in use."}
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		defaultProfile, err := profileRepo.GetByName(models.DefaultProfileName)
		if err != nil {
			return fmt.Errorf("default profile %s not found: %w", models.DefaultProfileName, err)
		}

		user := &models.User{
			Name:         req.Name,
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hashedPassword),
			Profiles:     []models.Profile{*defaultProfile},
		}
		if err := userRepo.Create(user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		logrus.Infof("Registered user %s", user.Username)
		return nil
	})
}

// Login verifies the credentials and returns a signed token
func (s *AuthService) Login(req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return "", &models.UnauthorizedError{Message: "Invalid username or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", &models.UnauthorizedError{Message: "Invalid username or password"}
	}

	return s.GenerateToken(user)
}

// GenerateToken issues an HS256 token carrying the issuer, the username as
// subject and a fixed expiration
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   user.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Authenticate verifies a token's signature, issuer and expiration, resolves
// the subject to a stored user and returns the request-scoped principal
func (s *AuthService) Authenticate(tokenString string) (*models.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.jwtSecret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, &models.UnauthorizedError{Message: "Invalid or expired token"}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, &models.UnauthorizedError{Message: "Invalid or expired token"}
	}

	user, err := s.userRepo.GetByUsername(claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.UnauthorizedError{Message: "Invalid or expired token"}
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return &models.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
	}, nil
}
