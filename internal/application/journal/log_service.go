package journal

import (
	"context"

	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/domain/journal"
	"github.com/healthtrack/backend/internal/domain/shared"
)

// LogService handles daily log submission and listing
type LogService struct {
	logRepo journal.HealthLogRepository
	logger  *zap.Logger
}

// NewLogService creates a new log service
func NewLogService(logRepo journal.HealthLogRepository, logger *zap.Logger) *LogService {
	return &LogService{
		logRepo: logRepo,
		logger:  logger,
	}
}

// SubmitLog validates and stores a new daily entry
func (s *LogService) SubmitLog(ctx context.Context, input SubmitLogInput) (*SubmitLogResult, error) {
	log, err := input.Draft.Validate(input.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.logRepo.Create(ctx, log); err != nil {
		s.logger.Error("Failed to store log entry",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to store log entry")
	}

	s.logger.Info("Log entry stored",
		zap.String("user_id", input.UserID.String()),
		zap.String("log_id", log.ID.String()),
		zap.String("date", log.DateString()))

	return &SubmitLogResult{Log: NewLogInfo(log)}, nil
}

// ListLogs returns one page of the user's entries in submission order
func (s *LogService) ListLogs(ctx context.Context, input ListLogsInput) (*ListLogsResult, error) {
	filter := journal.NewLogFilter()
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 {
		filter.PageSize = input.PageSize
	}

	logs, total, err := s.logRepo.FindByUser(ctx, input.UserID, filter)
	if err != nil {
		s.logger.Error("Failed to list log entries",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list log entries")
	}

	infos := make([]LogInfo, 0, len(logs))
	for _, log := range logs {
		infos = append(infos, NewLogInfo(log))
	}

	return &ListLogsResult{
		Logs:     infos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.Limit(),
	}, nil
}
