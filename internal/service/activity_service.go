package service

import (
	"github.com/rajat6235/Robusters-POS-sub001/internal/models"
	"github.com/rajat6235/Robusters-POS-sub001/internal/repository"
)

// ActivityService reads the best-effort activity feed.
type ActivityService struct {
	repo repository.ActivityLogRepository
}

// NewActivityService creates an activity service.
func NewActivityService(repo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// List lists activity entries.
func (s *ActivityService) List(filter repository.ActivityLogListFilter) ([]models.ActivityLog, int64, error) {
	return s.repo.List(filter)
}
