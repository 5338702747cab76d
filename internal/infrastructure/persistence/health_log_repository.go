package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/domain/journal"
	"github.com/healthtrack/backend/internal/infrastructure/persistence/models"
)

// GormHealthLogRepository implements HealthLogRepository using GORM
type GormHealthLogRepository struct {
	db *gorm.DB
}

// NewGormHealthLogRepository creates a new GormHealthLogRepository
func NewGormHealthLogRepository(db *gorm.DB) *GormHealthLogRepository {
	return &GormHealthLogRepository{db: db}
}

// Create persists a new log entry
func (r *GormHealthLogRepository) Create(ctx context.Context, log *journal.HealthLog) error {
	model := models.HealthLogModelFromDomain(log)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByUser returns a page of the user's logs in insertion order
func (r *GormHealthLogRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter journal.LogFilter) ([]*journal.HealthLog, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.HealthLogModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.HealthLogModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]*journal.HealthLog, len(rows))
	for i := range rows {
		logs[i] = rows[i].ToDomain()
	}
	return logs, total, nil
}

// FindAllByUser returns every log owned by the user in insertion order
func (r *GormHealthLogRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*journal.HealthLog, error) {
	var rows []models.HealthLogModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	logs := make([]*journal.HealthLog, len(rows))
	for i := range rows {
		logs[i] = rows[i].ToDomain()
	}
	return logs, nil
}

// CountByUser returns the number of logs owned by the user
func (r *GormHealthLogRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.HealthLogModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormHealthLogRepository implements journal.HealthLogRepository
var _ journal.HealthLogRepository = (*GormHealthLogRepository)(nil)
