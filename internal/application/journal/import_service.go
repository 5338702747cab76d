package journal

import (
	"bytes"
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/domain/journal"
	"github.com/healthtrack/backend/internal/domain/shared"
	csvimport "github.com/healthtrack/backend/internal/infrastructure/import"
)

// ImportService imports log entries from CSV files in the export format
type ImportService struct {
	logRepo   journal.HealthLogRepository
	processor *csvimport.ImportProcessor
	logger    *zap.Logger
}

// NewImportService creates a new import service
func NewImportService(logRepo journal.HealthLogRepository, processor *csvimport.ImportProcessor, logger *zap.Logger) *ImportService {
	return &ImportService{
		logRepo:   logRepo,
		processor: processor,
		logger:    logger,
	}
}

// importRules returns the per-column validation for a health log CSV
func importRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field(journal.CSVColumnDate).Date().Required().Build(),
		csvimport.Field(journal.CSVColumnSleepHours).Decimal().Range(decimal.Zero, decimal.NewFromInt(24)).Build(),
		csvimport.Field(journal.CSVColumnWaterIntake).Decimal().MinValue(decimal.Zero).Build(),
		csvimport.Field(journal.CSVColumnSymptoms).String().MaxLength(2000).Build(),
		csvimport.Field(journal.CSVColumnMood).String().MaxLength(2000).Build(),
		csvimport.Field(journal.CSVColumnNotes).String().MaxLength(5000).Build(),
	}
}

// ImportCSV parses the file, validates each row and stores the valid
// entries. Rows that fail validation are reported without aborting the
// rest of the import.
func (s *ImportService) ImportCSV(ctx context.Context, input ImportInput) (*ImportResult, error) {
	if s.processor.MaxFileSize() > 0 && int64(len(input.Content)) > s.processor.MaxFileSize() {
		return nil, shared.NewDomainError("IMPORT_FILE_TOO_LARGE", "Import file exceeds the size limit")
	}

	processed, err := s.processor.Process(ctx, bytes.NewReader(input.Content),
		[]string{journal.CSVColumnDate}, importRules())
	if err != nil {
		s.logger.Warn("CSV import rejected",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("IMPORT_INVALID_FILE", err.Error())
	}

	result := &ImportResult{
		TotalRows: processed.TotalRows,
		Failed:    processed.ErrorRows,
		Errors:    processed.Errors,
	}

	for _, row := range processed.Rows {
		draft := journal.LogEntryDraft{
			Date:        row.Get(journal.CSVColumnDate),
			Symptoms:    row.Get(journal.CSVColumnSymptoms),
			Mood:        row.Get(journal.CSVColumnMood),
			SleepHours:  row.Get(journal.CSVColumnSleepHours),
			WaterIntake: row.Get(journal.CSVColumnWaterIntake),
			Notes:       row.Get(journal.CSVColumnNotes),
		}

		log, err := draft.Validate(input.UserID)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors,
				csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportValidation, err.Error()))
			continue
		}

		if err := s.logRepo.Create(ctx, log); err != nil {
			s.logger.Error("Failed to store imported entry",
				zap.String("user_id", input.UserID.String()),
				zap.Int("row", row.LineNumber),
				zap.Error(err))
			result.Failed++
			result.Errors = append(result.Errors,
				csvimport.NewRowError(row.LineNumber, "", csvimport.ErrCodeImportValidation, "failed to store entry"))
			continue
		}

		result.Imported++
	}

	s.logger.Info("CSV import finished",
		zap.String("user_id", input.UserID.String()),
		zap.Int("total", result.TotalRows),
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed))

	return result, nil
}
