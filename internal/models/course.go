package models

import (
	"strings"
	"time"
)

// Course represents reference data a topic is filed under
type Course struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex" example:"Go Fundamentals"`
	Category  string    `json:"category" gorm:"type:varchar(255)" example:"programming"`
}

// TableName specifies the table name for the Course model
func (Course) TableName() string {
	return "courses"
}

// CreateCourseRequest represents the course creation payload
type CreateCourseRequest struct {
	Name     string `json:"name" example:"Go Fundamentals"`
	Category string `json:"category" example:"programming"`
}

// Validate checks the course payload and returns a field -> message map
func (r *CreateCourseRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "Name cannot be blank"
	}
	return fields
}
