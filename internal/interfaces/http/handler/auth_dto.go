package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack/backend/internal/application/identity"
)

// =====================
// Auth Request DTOs
// =====================

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// RefreshTokenRequest represents the request body for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for logout. The refresh token
// is optional; when present it is revoked together with the access token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// =====================
// Auth Response DTOs
// =====================

// TokenResponse represents the token data in auth responses
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserResponse represents user data in auth and profile responses
type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	Name           string     `json:"name,omitempty"`
	Age            *int       `json:"age,omitempty"`
	HealthGoals    string     `json:"health_goals,omitempty"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
}

// newUserResponse builds a UserResponse from application-layer user info
func newUserResponse(info identity.UserInfo) UserResponse {
	return UserResponse{
		ID:             info.ID,
		Username:       info.Username,
		Name:           info.Name,
		Age:            info.Age,
		HealthGoals:    info.HealthGoals,
		ProfilePicture: info.ProfilePicture,
		CreatedAt:      info.CreatedAt,
		LastLoginAt:    info.LastLoginAt,
	}
}

// RegisterResponse represents the response body for successful registration
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// LoginResponse represents the response body for successful login
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// RefreshTokenResponse represents the response body for successful token refresh
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

// CurrentUserResponse represents the response body for current user info
type CurrentUserResponse struct {
	User UserResponse `json:"user"`
}

// LogoutResponse represents the response body for logout
type LogoutResponse struct {
	Message string `json:"message"`
}
