package models

import (
	"time"

	"github.com/healthtrack/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Username       string `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash   string `gorm:"type:varchar(255);not null"`
	Name           string `gorm:"type:varchar(200)"`
	Age            *int
	HealthGoals    string `gorm:"type:text"`
	ProfilePicture string `gorm:"type:varchar(500)"`
	LastLoginAt    *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:     m.BaseModel.ToDomain(),
		Username:       m.Username,
		PasswordHash:   m.PasswordHash,
		Name:           m.Name,
		Age:            m.Age,
		HealthGoals:    m.HealthGoals,
		ProfilePicture: m.ProfilePicture,
		LastLoginAt:    m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.Name = u.Name
	m.Age = u.Age
	m.HealthGoals = u.HealthGoals
	m.ProfilePicture = u.ProfilePicture
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
