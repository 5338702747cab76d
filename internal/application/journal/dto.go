package journal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/healthtrack/backend/internal/domain/journal"
	csvimport "github.com/healthtrack/backend/internal/infrastructure/import"
)

// SubmitLogInput contains the input for submitting a daily log entry
type SubmitLogInput struct {
	UserID uuid.UUID
	Draft  journal.LogEntryDraft
}

// LogInfo contains a single log entry returned to clients
type LogInfo struct {
	ID          uuid.UUID
	Date        string
	Symptoms    string
	Mood        string
	SleepHours  decimal.Decimal
	WaterIntake decimal.Decimal
	Notes       string
	CreatedAt   time.Time
}

// NewLogInfo builds a LogInfo from a domain entry
func NewLogInfo(log *journal.HealthLog) LogInfo {
	return LogInfo{
		ID:          log.ID,
		Date:        log.DateString(),
		Symptoms:    log.Symptoms,
		Mood:        log.Mood,
		SleepHours:  log.SleepHours,
		WaterIntake: log.WaterIntake,
		Notes:       log.Notes,
		CreatedAt:   log.CreatedAt,
	}
}

// SubmitLogResult contains the stored entry
type SubmitLogResult struct {
	Log LogInfo
}

// ListLogsInput contains the input for a paginated log listing
type ListLogsInput struct {
	UserID   uuid.UUID
	Page     int
	PageSize int
}

// ListLogsResult contains one page of log entries
type ListLogsResult struct {
	Logs     []LogInfo
	Total    int64
	Page     int
	PageSize int
}

// ImportInput contains the input for a CSV import
type ImportInput struct {
	UserID  uuid.UUID
	Content []byte
}

// ImportResult summarizes a CSV import run
type ImportResult struct {
	TotalRows int
	Imported  int
	Failed    int
	Errors    []csvimport.RowError
}
