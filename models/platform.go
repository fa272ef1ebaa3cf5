package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Platform is the streaming platform a title is published on. Each movie or
// series belongs to exactly one platform.
type Platform struct {
	gorm.Model
	Title string `json:"title" gorm:"type:varchar(200);not null"`
	Slug  string `json:"slug" gorm:"type:varchar(200);uniqueIndex;not null"`
}

func (Platform) TableName() string {
	return "platforms"
}

func (p *Platform) BeforeSave(tx *gorm.DB) error {
	p.Slug = slug.Make(p.Title)
	return nil
}

// PlatformRequest is the create/update payload for platforms.
type PlatformRequest struct {
	Title string `json:"title" binding:"required" example:"Netflix"`
}
