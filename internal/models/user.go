package models

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// User represents a registered account in the forum
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Username     string    `json:"username" gorm:"type:varchar(255);not null;uniqueIndex"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	// Relationships
	Profiles []Profile `json:"profiles,omitempty" gorm:"many2many:user_profiles;"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// Principal is the request-scoped identity derived from a verified token.
// It is attached to the request context by the auth middleware and passed
// explicitly into services; the stored User record never doubles as the
// authentication principal.
type Principal struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Name     string `json:"name" example:"John Doe"`
	Username string `json:"username" example:"johndoe"`
	Email    string `json:"email" example:"john@example.com"`
	Password string `json:"password" example:"s3cret!"`
}

// Validate checks the registration payload and returns a field -> message map
func (r *RegisterRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "Name cannot be blank"
	}
	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = "Username cannot be blank"
	} else if utf8.RuneCountInString(r.Username) < 3 {
		fields["username"] = "Username must have at least 3 characters"
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = "Email cannot be blank"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		fields["email"] = "Invalid email format"
	}
	if r.Password == "" {
		fields["password"] = "Password cannot be blank"
	} else if utf8.RuneCountInString(r.Password) < 6 {
		fields["password"] = "Password must have at least 6 characters"
	}
	return fields
}
