package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack/backend/internal/domain/identity"
)

// RegisterInput contains the input for account registration
type RegisterInput struct {
	Username string
	Password string
}

// RegisterResult contains the result of a successful registration
type RegisterResult struct {
	User UserInfo
}

// LoginInput contains the input for user login
type LoginInput struct {
	Username string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains user information returned to clients
type UserInfo struct {
	ID             uuid.UUID
	Username       string
	Name           string
	Age            *int
	HealthGoals    string
	ProfilePicture string
	CreatedAt      time.Time
	LastLoginAt    *time.Time
}

// NewUserInfo builds a UserInfo from a domain user
func NewUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:             user.ID,
		Username:       user.Username,
		Name:           user.Name,
		Age:            user.Age,
		HealthGoals:    user.HealthGoals,
		ProfilePicture: user.ProfilePicture,
		CreatedAt:      user.CreatedAt,
		LastLoginAt:    user.LastLoginAt,
	}
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID    uuid.UUID
	AccessJTI string
	AccessTTL time.Duration

	// RefreshToken, when provided, is revoked together with the access token
	RefreshToken string
}

// GetCurrentUserInput contains the input for getting current user info
type GetCurrentUserInput struct {
	UserID uuid.UUID
}

// CurrentUserResult contains the current user's information
type CurrentUserResult struct {
	User UserInfo
}

// UploadedFile carries an uploaded file's name and content
type UploadedFile struct {
	Filename string
	Content  []byte
}

// UpdateProfileInput contains the input for a profile update.
// Nil pointer fields are left unchanged.
type UpdateProfileInput struct {
	UserID      uuid.UUID
	Name        *string
	Age         *int
	ClearAge    bool
	HealthGoals *string
	Picture     *UploadedFile
}

// ProfileResult contains the profile returned after a read or update
type ProfileResult struct {
	User UserInfo
}
