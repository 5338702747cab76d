package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/healthtrack/backend/internal/domain/shared"
)

// DateLayout is the wire format for log dates
const DateLayout = "2006-01-02"

const (
	maxTextFieldLength = 2000
	maxNotesLength     = 5000
)

var maxSleepHours = decimal.NewFromInt(24)

// HealthLog is a single daily journal entry. Entries are immutable
// once recorded; there are no update or delete operations.
type HealthLog struct {
	shared.BaseEntity
	UserID      uuid.UUID
	Date        time.Time
	Symptoms    string
	Mood        string
	SleepHours  decimal.Decimal
	WaterIntake decimal.Decimal
	Notes       string
}

// LogEntryDraft carries raw, unvalidated submission values. Validate
// turns a draft into a HealthLog or fails with a field-specific error.
type LogEntryDraft struct {
	Date        string
	Symptoms    string
	Mood        string
	SleepHours  string
	WaterIntake string
	Notes       string
}

// Validate checks the draft and builds the entry for the given owner.
// Free-text fields are stored as submitted apart from length limits.
func (d LogEntryDraft) Validate(userID uuid.UUID) (*HealthLog, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Log entry requires an owner")
	}

	date, err := parseDate(d.Date)
	if err != nil {
		return nil, err
	}

	sleep, err := parseAmount(d.SleepHours, "INVALID_SLEEP_HOURS", "Sleep hours")
	if err != nil {
		return nil, err
	}
	if sleep.GreaterThan(maxSleepHours) {
		return nil, shared.NewDomainError("INVALID_SLEEP_HOURS", "Sleep hours cannot exceed 24")
	}

	water, err := parseAmount(d.WaterIntake, "INVALID_WATER_INTAKE", "Water intake")
	if err != nil {
		return nil, err
	}

	if len(d.Symptoms) > maxTextFieldLength {
		return nil, shared.NewDomainError("INVALID_SYMPTOMS", "Symptoms cannot exceed 2000 characters")
	}
	if len(d.Mood) > maxTextFieldLength {
		return nil, shared.NewDomainError("INVALID_MOOD", "Mood cannot exceed 2000 characters")
	}
	if len(d.Notes) > maxNotesLength {
		return nil, shared.NewDomainError("INVALID_NOTES", "Notes cannot exceed 5000 characters")
	}

	return &HealthLog{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		Date:        date,
		Symptoms:    d.Symptoms,
		Mood:        d.Mood,
		SleepHours:  sleep,
		WaterIntake: water,
		Notes:       d.Notes,
	}, nil
}

// DateString returns the date in wire format
func (l *HealthLog) DateString() string {
	return l.Date.Format(DateLayout)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date is required")
	}
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
	}
	return date, nil
}

func parseAmount(raw, code, field string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, shared.NewDomainError(code, field+" must be a number")
	}
	if value.IsNegative() {
		return decimal.Zero, shared.NewDomainError(code, field+" cannot be negative")
	}
	return value, nil
}
