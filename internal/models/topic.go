package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Topic status values. A topic starts open and is closed when one of its
// answers is accepted as the solution. There is no transition back to open.
const (
	TopicStatusOpen   = "open"
	TopicStatusClosed = "closed"
)

// Topic represents a forum discussion thread
type Topic struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `json:"title" gorm:"type:varchar(100);not null;uniqueIndex"`
	Message   string    `json:"message" gorm:"type:varchar(500);not null;uniqueIndex"`
	Status    string    `json:"status" gorm:"type:varchar(10);not null;default:open;index"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	CourseID  uint      `json:"course_id" gorm:"not null;index"`
	// Relationships
	Author  User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Course  Course   `json:"course,omitempty" gorm:"foreignKey:CourseID;references:ID"`
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:TopicID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Topic model
func (Topic) TableName() string {
	return "topics"
}

// CreateTopicRequest represents the topic creation payload
type CreateTopicRequest struct {
	Title    string `json:"title" example:"How do I parse JSON in Go?"`
	Message  string `json:"message" example:"I am trying to decode a nested JSON document..."`
	CourseID uint   `json:"course_id" example:"1"`
}

// Validate checks the topic payload and returns a field -> message map
func (r *CreateTopicRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = "Title cannot be blank"
	} else if l := utf8.RuneCountInString(r.Title); l < 5 || l > 100 {
		fields["title"] = "Title must be between 5 and 100 characters"
	}
	if strings.TrimSpace(r.Message) == "" {
		fields["message"] = "Message cannot be blank"
	} else if l := utf8.RuneCountInString(r.Message); l < 10 || l > 500 {
		fields["message"] = "Message must be between 10 and 500 characters"
	}
	if r.CourseID == 0 {
		fields["course_id"] = "Course ID cannot be null"
	}
	return fields
}

// UpdateTopicRequest carries the same shape and rules as creation
type UpdateTopicRequest = CreateTopicRequest

// TopicResponse is the transport view of a topic
type TopicResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
	Author    string    `json:"author"`
	Course    string    `json:"course"`
}

// NewTopicResponse maps a Topic entity to its transport view
func NewTopicResponse(topic *Topic) *TopicResponse {
	return &TopicResponse{
		ID:        topic.ID,
		Title:     topic.Title,
		Message:   topic.Message,
		CreatedAt: topic.CreatedAt,
		Status:    topic.Status,
		Author:    topic.Author.Username,
		Course:    topic.Course.Name,
	}
}
