package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/healthtrack/backend/internal/domain/journal"
	"github.com/healthtrack/backend/internal/domain/shared"
	csvimport "github.com/healthtrack/backend/internal/infrastructure/import"
)

func newImportService(repo *MockHealthLogRepository, opts ...csvimport.ProcessorOption) *ImportService {
	return NewImportService(repo, csvimport.NewImportProcessor(opts...), zap.NewNop())
}

func TestImportService_ImportCSV(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("imports all valid rows", func(t *testing.T) {
		repo := new(MockHealthLogRepository)
		svc := newImportService(repo)

		csv := "Date,Symptoms,Mood,Sleep Hours,Water Intake,Notes\n" +
			"2026-01-15,headache,tired,6.5,1500,busy day\n" +
			"2026-01-16,,good,8,2000,\n"

		var stored []*journal.HealthLog
		repo.On("Create", ctx, mock.AnythingOfType("*journal.HealthLog")).
			Run(func(args mock.Arguments) {
				stored = append(stored, args.Get(1).(*journal.HealthLog))
			}).Return(nil)

		result, err := svc.ImportCSV(ctx, ImportInput{UserID: userID, Content: []byte(csv)})

		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalRows)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, 0, result.Failed)
		assert.Empty(t, result.Errors)

		require.Len(t, stored, 2)
		assert.Equal(t, userID, stored[0].UserID)
		assert.Equal(t, "2026-01-15", stored[0].DateString())
		assert.Equal(t, "headache", stored[0].Symptoms)
	})

	t.Run("invalid rows are reported, valid rows still imported", func(t *testing.T) {
		repo := new(MockHealthLogRepository)
		svc := newImportService(repo)

		csv := "Date,Sleep Hours\n" +
			"2026-01-15,7\n" +
			"bad-date,8\n" +
			"2026-01-17,30\n"

		repo.On("Create", ctx, mock.Anything).Return(nil)

		result, err := svc.ImportCSV(ctx, ImportInput{UserID: userID, Content: []byte(csv)})

		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalRows)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 2, result.Failed)
		assert.Len(t, result.Errors, 2)
	})

	t.Run("missing Date column rejects the file", func(t *testing.T) {
		repo := new(MockHealthLogRepository)
		svc := newImportService(repo)

		csv := "When,Mood\n2026-01-15,good\n"

		_, err := svc.ImportCSV(ctx, ImportInput{UserID: userID, Content: []byte(csv)})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "IMPORT_INVALID_FILE", domainErr.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty file rejected", func(t *testing.T) {
		repo := new(MockHealthLogRepository)
		svc := newImportService(repo)

		_, err := svc.ImportCSV(ctx, ImportInput{UserID: userID, Content: []byte{}})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "IMPORT_INVALID_FILE", domainErr.Code)
	})

	t.Run("oversized file rejected before parsing", func(t *testing.T) {
		repo := new(MockHealthLogRepository)
		svc := newImportService(repo, csvimport.WithMaxFileSize(10))

		_, err := svc.ImportCSV(ctx, ImportInput{
			UserID:  userID,
			Content: []byte("Date\n2026-01-15\n"),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "IMPORT_FILE_TOO_LARGE", domainErr.Code)
	})

	t.Run("storage failure counts the row as failed", func(t *testing.T) {
		repo := new(MockHealthLogRepository)
		svc := newImportService(repo)

		csv := "Date\n2026-01-15\n2026-01-16\n"

		repo.On("Create", ctx, mock.MatchedBy(func(log *journal.HealthLog) bool {
			return log.DateString() == "2026-01-15"
		})).Return(errors.New("db down"))
		repo.On("Create", ctx, mock.MatchedBy(func(log *journal.HealthLog) bool {
			return log.DateString() == "2026-01-16"
		})).Return(nil)

		result, err := svc.ImportCSV(ctx, ImportInput{UserID: userID, Content: []byte(csv)})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, 2, result.Errors[0].Row)
	})
}
