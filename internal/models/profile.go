package models

import (
	"time"
)

// DefaultProfileName is the role assigned to every new account.
const DefaultProfileName = "ROLE_USER"

// Profile represents a named role grouping granted to users (e.g. "ROLE_USER")
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex" example:"ROLE_USER"`
	// Relationships
	Users []User `json:"users,omitempty" gorm:"many2many:user_profiles;"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
