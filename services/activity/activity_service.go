package activity

import (
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// ActivityService records and reads the admin audit trail.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// RecordActivity appends one audit entry. Failures are logged but never block
// the operation that triggered them.
func (s *ActivityService) RecordActivity(activityType string, content string) error {
	entry := models.Activity{
		Type:    activityType,
		Content: content,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		utils.LogError("failed to record activity", err)
		return err
	}

	return nil
}

// GetRecentActivities returns the newest audit entries, newest first.
func (s *ActivityService) GetRecentActivities(limit int) ([]models.Activity, error) {
	var activities []models.Activity

	if err := s.db.Order("created_at DESC").Limit(limit).Find(&activities).Error; err != nil {
		utils.LogError("failed to load recent activities", err)
		return nil, err
	}

	return activities, nil
}
