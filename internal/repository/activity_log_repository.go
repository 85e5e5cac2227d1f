package repository

import (
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"

	"gorm.io/gorm"
)

// ActivityLogRepository is the activity feed accessor.
type ActivityLogRepository interface {
	Create(entry *models.ActivityLog) error
	List(filter ActivityLogListFilter) ([]models.ActivityLog, int64, error)
}

// GormActivityLogRepository is the GORM implementation.
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates an activity log repository.
func NewActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// Create appends one activity entry.
func (r *GormActivityLogRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// List lists activity entries, newest first.
func (r *GormActivityLogRepository) List(filter ActivityLogListFilter) ([]models.ActivityLog, int64, error) {
	query := r.db.Model(&models.ActivityLog{})
	if filter.EventType != "" {
		query = query.Where("event_type = ?", filter.EventType)
	}
	if filter.OrderID > 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.ActorID > 0 {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var entries []models.ActivityLog
	if err := query.Order("id desc").Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
