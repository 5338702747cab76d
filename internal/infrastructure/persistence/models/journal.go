package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/healthtrack/backend/internal/domain/journal"
)

// HealthLogModel is the persistence model for the HealthLog domain entity.
type HealthLogModel struct {
	BaseModel
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null"`
	Symptoms    string          `gorm:"type:text"`
	Mood        string          `gorm:"type:text"`
	SleepHours  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	WaterIntake decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (HealthLogModel) TableName() string {
	return "health_logs"
}

// ToDomain converts the persistence model to a domain HealthLog entity.
func (m *HealthLogModel) ToDomain() *journal.HealthLog {
	return &journal.HealthLog{
		BaseEntity:  m.BaseModel.ToDomain(),
		UserID:      m.UserID,
		Date:        m.Date,
		Symptoms:    m.Symptoms,
		Mood:        m.Mood,
		SleepHours:  m.SleepHours,
		WaterIntake: m.WaterIntake,
		Notes:       m.Notes,
	}
}

// FromDomain populates the persistence model from a domain HealthLog entity.
func (m *HealthLogModel) FromDomain(l *journal.HealthLog) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.UserID = l.UserID
	m.Date = l.Date
	m.Symptoms = l.Symptoms
	m.Mood = l.Mood
	m.SleepHours = l.SleepHours
	m.WaterIntake = l.WaterIntake
	m.Notes = l.Notes
}

// HealthLogModelFromDomain creates a persistence model from a domain HealthLog entity.
func HealthLogModelFromDomain(l *journal.HealthLog) *HealthLogModel {
	m := &HealthLogModel{}
	m.FromDomain(l)
	return m
}
