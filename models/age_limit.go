package models

import (
	"gorm.io/gorm"
)

// AgeLimit is an age rating (e.g. "PG-13", minimum age 13). It carries no
// derived identifier.
type AgeLimit struct {
	gorm.Model
	Title  string `json:"title" gorm:"type:varchar(200);not null"`
	MinAge int    `json:"min_age" gorm:"not null"`
}

func (AgeLimit) TableName() string {
	return "age_limits"
}

// AgeLimitRequest is the create/update payload for age limits.
type AgeLimitRequest struct {
	Title  string `json:"title" binding:"required" example:"PG-13"`
	MinAge int    `json:"min_age" binding:"min=0" example:"13"`
}
