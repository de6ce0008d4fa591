package models

import (
	"strings"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" example:"johndoe"`
	Password string `json:"password" example:"s3cret!"`
}

// Validate checks the login payload and returns a field -> message map
func (r *LoginRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = "Username cannot be blank"
	}
	if r.Password == "" {
		fields["password"] = "Password cannot be blank"
	}
	return fields
}

// TokenResponse carries the signed credential returned by a successful login
type TokenResponse struct {
	Token string `json:"token"`
}
