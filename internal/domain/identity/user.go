package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/healthtrack/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

const (
	maxNameLength        = 200
	maxHealthGoalsLength = 2000
	maxAge               = 150
)

// User represents an account in the journal.
// It is the aggregate root for identity and profile operations.
type User struct {
	shared.BaseEntity
	Username       string
	PasswordHash   string
	Name           string
	Age            *int
	HealthGoals    string
	ProfilePicture string
	LastLoginAt    *time.Time
}

// NewUser creates a new user with a hashed credential
func NewUser(username, password string) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     strings.ToLower(strings.TrimSpace(username)),
		PasswordHash: passwordHash,
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// SetPassword sets a new password
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()

	return nil
}

// SetName sets the user's display name
func (u *User) SetName(name string) error {
	if len(name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}

	u.Name = strings.TrimSpace(name)
	u.UpdatedAt = time.Now()

	return nil
}

// SetAge sets the user's age. A nil age clears the field.
func (u *User) SetAge(age *int) error {
	if age != nil && (*age <= 0 || *age > maxAge) {
		return shared.NewDomainError("INVALID_AGE", "Age must be between 1 and 150")
	}

	u.Age = age
	u.UpdatedAt = time.Now()

	return nil
}

// SetHealthGoals sets the user's health goals text
func (u *User) SetHealthGoals(goals string) error {
	if len(goals) > maxHealthGoalsLength {
		return shared.NewDomainError("INVALID_HEALTH_GOALS", "Health goals cannot exceed 2000 characters")
	}

	u.HealthGoals = strings.TrimSpace(goals)
	u.UpdatedAt = time.Now()

	return nil
}

// SetProfilePicture records the stored location of the user's picture.
// An empty value is allowed and means no picture.
func (u *User) SetProfilePicture(location string) error {
	if len(location) > 500 {
		return shared.NewDomainError("INVALID_PROFILE_PICTURE", "Picture location cannot exceed 500 characters")
	}

	u.ProfilePicture = location
	u.UpdatedAt = time.Now()

	return nil
}

// RecordLogin records a successful login
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}

	// Allow alphanumeric, underscore, hyphen, and dot
	usernameRegex := regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers, underscores, hyphens, and dots")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	// Check for at least one letter and one number
	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
