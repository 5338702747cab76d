package journal

import (
	"context"

	"github.com/google/uuid"
)

// HealthLogRepository defines the interface for log persistence
type HealthLogRepository interface {
	// Create persists a new log entry
	Create(ctx context.Context, log *HealthLog) error

	// FindByUser returns a page of the user's logs in insertion order
	FindByUser(ctx context.Context, userID uuid.UUID, filter LogFilter) ([]*HealthLog, int64, error)

	// FindAllByUser returns every log owned by the user in insertion order
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*HealthLog, error)

	// CountByUser returns the number of logs owned by the user
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// LogFilter contains pagination options for querying logs
type LogFilter struct {
	Page     int
	PageSize int
}

// NewLogFilter creates a LogFilter with default values
func NewLogFilter() LogFilter {
	return LogFilter{
		Page:     1,
		PageSize: 20,
	}
}

// Offset returns the offset for pagination
func (f LogFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the limit for pagination
func (f LogFilter) Limit() int {
	if f.PageSize <= 0 {
		return 20
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}
