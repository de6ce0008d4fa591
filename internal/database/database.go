package database

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forumhub/forum-hub-backend/internal/models"
)

// InitDB initializes the database connection, runs migrations and seeds
// reference data
func InitDB() (*gorm.DB, error) {
	host := getEnv("DB_HOST", "")
	port := getEnv("DB_PORT", "")
	user := getEnv("DB_USER", "")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "")
	sslmode := getEnv("DB_SSLMODE", "disable")

	if host == "" || port == "" || user == "" || password == "" || dbname == "" {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	gormLogger := logger.New(
		logrus.New(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := Seed(db); err != nil {
		return nil, err
	}

	logrus.Info("Database connection established and migrations completed")
	return db, nil
}

// Migrate runs the schema migrations for all entities. Unique indexes on
// users.username, users.email, courses.name, topics.title and topics.message
// are the authoritative uniqueness enforcement; service-level pre-checks only
// produce friendlier conflict responses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Profile{},
		&models.User{},
		&models.Course{},
		&models.Topic{},
		&models.Answer{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Seed creates the default profile assigned to new registrations
func Seed(db *gorm.DB) error {
	var profile models.Profile
	err := db.Where("name = ?", models.DefaultProfileName).First(&profile).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check default profile: %w", err)
	}

	logrus.Infof("Creating default profile '%s'...", models.DefaultProfileName)
	if err := db.Create(&models.Profile{Name: models.DefaultProfileName}).Error; err != nil {
		return fmt.Errorf("failed to create default profile: %w", err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
