package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/domain/journal"
	"github.com/healthtrack/backend/internal/domain/shared"
)

// ExportService writes a user's full log history as CSV.
// Each export builds its own buffer, so concurrent exports are isolated.
type ExportService struct {
	logRepo journal.HealthLogRepository
	logger  *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(logRepo journal.HealthLogRepository, logger *zap.Logger) *ExportService {
	return &ExportService{
		logRepo: logRepo,
		logger:  logger,
	}
}

// ExportResult holds the rendered CSV and a download file name
type ExportResult struct {
	Filename string
	Content  []byte
}

// ExportCSV renders all of the user's entries in list order
func (s *ExportService) ExportCSV(ctx context.Context, userID uuid.UUID) (*ExportResult, error) {
	logs, err := s.logRepo.FindAllByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load entries for export",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to export log entries")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(journal.CSVColumns()); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to export log entries")
	}

	for _, log := range logs {
		record := []string{
			log.DateString(),
			log.Symptoms,
			log.Mood,
			log.SleepHours.String(),
			log.WaterIntake.String(),
			log.Notes,
		}
		if err := writer.Write(record); err != nil {
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to export log entries")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to export log entries")
	}

	s.logger.Info("Log export rendered",
		zap.String("user_id", userID.String()),
		zap.Int("rows", len(logs)))

	return &ExportResult{
		Filename: fmt.Sprintf("health_logs_%s.csv", time.Now().Format("20060102")),
		Content:  buf.Bytes(),
	}, nil
}
