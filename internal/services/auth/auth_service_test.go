package auth

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/forumhub/forum-hub-backend/internal/database"
	"github.com/forumhub/forum-hub-backend/internal/database/repository"
	"github.com/forumhub/forum-hub-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))
	return db
}

func newTestService(db *gorm.DB, ttl time.Duration) *AuthService {
	return &AuthService{
		db:        db,
		userRepo:  repository.NewUserRepository(db),
		jwtSecret: []byte("test-secret"),
		tokenTTL:  ttl,
	}
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db, 2*time.Hour)

	req := &models.RegisterRequest{
		Name:     "John Doe",
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "s3cret!",
	}
	require.NoError(t, svc.Register(req))

	user, err := repository.NewUserRepository(db).GetByUsername("johndoe")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
	assert.NotEqual(t, "s3cret!", user.PasswordHash)

	var profiles []models.Profile
	require.NoError(t, db.Model(user).Association("Profiles").Find(&profiles))
	require.Len(t, profiles, 1)
	assert.Equal(t, models.DefaultProfileName, profiles[0].Name)
}

func TestRegisterDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db, 2*time.Hour)

	require.NoError(t, svc.Register(&models.RegisterRequest{
		Name:     "John Doe",
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "s3cret!",
	}))

	err := svc.Register(&models.RegisterRequest{
		Name:     "Impostor",
		Username: "johndoe",
		Email:    "other@example.com",
		Password: "s3cret!",
	})
	var conflictErr *models.ConflictError
	require.ErrorAs(t, err, &conflictErr)

	err = svc.Register(&models.RegisterRequest{
		Name:     "Impostor",
		Username: "otheruser",
		Email:    "john@example.com",
		Password: "s3cret!",
	})
	require.ErrorAs(t, err, &conflictErr)

	// The original account is untouched
	user, err := repository.NewUserRepository(db).GetByUsername("johndoe")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
	assert.Equal(t, "john@example.com", user.Email)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db, 2*time.Hour)

	require.NoError(t, svc.Register(&models.RegisterRequest{
		Name:     "John Doe",
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "s3cret!",
	}))

	token, err := svc.Login(&models.LoginRequest{Username: "johndoe", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	var unauthorizedErr *models.UnauthorizedError
	_, err = svc.Login(&models.LoginRequest{Username: "johndoe", Password: "wrong"})
	require.ErrorAs(t, err, &unauthorizedErr)

	_, err = svc.Login(&models.LoginRequest{Username: "nobody", Password: "s3cret!"})
	require.ErrorAs(t, err, &unauthorizedErr)
}

func TestTokenClaims(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db, 2*time.Hour)

	user := &models.User{Name: "John Doe", Username: "johndoe", Email: "john@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return svc.jwtSecret, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.Equal(t, "johndoe", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db, 2*time.Hour)

	user := &models.User{Name: "John Doe", Username: "johndoe", Email: "john@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	principal, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, "johndoe", principal.Username)
	assert.Equal(t, "john@example.com", principal.Email)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	db := newTestDB(t)

	user := &models.User{Name: "John Doe", Username: "johndoe", Email: "john@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	// A negative TTL stands in for a token whose 2h lifetime has elapsed
	expired := newTestService(db, -time.Minute)
	token, err := expired.GenerateToken(user)
	require.NoError(t, err)

	var unauthorizedErr *models.UnauthorizedError
	_, err = expired.Authenticate(token)
	require.ErrorAs(t, err, &unauthorizedErr)
}

func TestAuthenticateRejectsForeignToken(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(db, 2*time.Hour)

	user := &models.User{Name: "John Doe", Username: "johndoe", Email: "john@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	var unauthorizedErr *models.UnauthorizedError

	// Garbage token
	_, err := svc.Authenticate("not-a-token")
	require.ErrorAs(t, err, &unauthorizedErr)

	// Token signed with a different secret
	other := newTestService(db, 2*time.Hour)
	other.jwtSecret = []byte("other-secret")
	token, err := other.GenerateToken(user)
	require.NoError(t, err)
	_, err = svc.Authenticate(token)
	require.ErrorAs(t, err, &unauthorizedErr)

	// Token with the wrong issuer
	claims := jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "johndoe",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.jwtSecret)
	require.NoError(t, err)
	_, err = svc.Authenticate(foreign)
	require.ErrorAs(t, err, &unauthorizedErr)
}
