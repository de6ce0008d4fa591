package models

import (
	"strings"
	"time"
)

// Answer represents a reply within a topic
type Answer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Solution  bool      `json:"solution" gorm:"not null;default:false"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	TopicID   uint      `json:"topic_id" gorm:"not null;index"`
	// Relationships
	Author User  `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Topic  Topic `json:"topic,omitempty" gorm:"foreignKey:TopicID;references:ID"`
}

// TableName specifies the table name for the Answer model
func (Answer) TableName() string {
	return "answers"
}

// CreateAnswerRequest represents the answer creation payload
type CreateAnswerRequest struct {
	Message string `json:"message" example:"Use encoding/json with a typed struct."`
	TopicID uint   `json:"topic_id" example:"1"`
}

// Validate checks the answer payload and returns a field -> message map
func (r *CreateAnswerRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Message) == "" {
		fields["message"] = "Message cannot be blank"
	}
	if r.TopicID == 0 {
		fields["topic_id"] = "Topic ID cannot be null"
	}
	return fields
}

// UpdateAnswerRequest represents the answer update payload (message only)
type UpdateAnswerRequest struct {
	Message string `json:"message" example:"Edited: use json.Decoder for streams."`
}

// Validate checks the update payload and returns a field -> message map
func (r *UpdateAnswerRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Message) == "" {
		fields["message"] = "Message cannot be blank"
	}
	return fields
}

// AnswerResponse is the transport view of an answer
type AnswerResponse struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	TopicID   uint      `json:"topic_id"`
	Solution  bool      `json:"solution"`
}

// NewAnswerResponse maps an Answer entity to its transport view
func NewAnswerResponse(answer *Answer) *AnswerResponse {
	return &AnswerResponse{
		ID:        answer.ID,
		Message:   answer.Message,
		CreatedAt: answer.CreatedAt,
		Author:    answer.Author.Username,
		TopicID:   answer.TopicID,
		Solution:  answer.Solution,
	}
}
