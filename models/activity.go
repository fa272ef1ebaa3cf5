package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity is one entry in the admin audit trail.
// @Description audit trail entry for an administrative action
type Activity struct {
	ID        uint           `json:"id" gorm:"primarykey" example:"1"`
	Type      string         `json:"type" gorm:"type:varchar(50);not null" example:"catalog"`
	Content   string         `json:"content" gorm:"type:text;not null" example:"movie \"Parasite\" created"`
	CreatedAt time.Time      `json:"created_at" example:"2024-01-20T15:04:05Z"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Activity types.
const (
	ActivityCatalog = "catalog"
	ActivityComment = "comment"
	ActivityUser    = "user"
	ActivitySystem  = "system"
)

func (Activity) TableName() string {
	return "activities"
}
