package dto

import (
	"time"

	"pharmos/internal/domain/auth"
	"pharmos/internal/domain/model"
)

// LoginRequest for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse includes the access token and session user info.
type LoginResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"tokenType"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      *model.User `json:"user"`
	Views     []auth.View `json:"views"`
}
