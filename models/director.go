package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Director holds the biography of a director. Portraits are stored on disk
// under uploads/images/directors; only the path is persisted.
type Director struct {
	gorm.Model
	FullName    string `json:"full_name" gorm:"type:varchar(200);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(200);uniqueIndex;not null"`
	Prizes      string `json:"prizes" gorm:"type:text"`
	Age         int    `json:"age"`
	BornPlace   string `json:"born_place" gorm:"type:varchar(200)"`
	Nationality string `json:"nationality" gorm:"type:varchar(200)"`
	Bio         string `json:"bio" gorm:"type:text"`
	Picture     string `json:"picture" gorm:"type:varchar(255)"`
}

func (Director) TableName() string {
	return "directors"
}

func (d *Director) BeforeSave(tx *gorm.DB) error {
	d.Slug = slug.Make(d.FullName)
	return nil
}

// DirectorRequest is the create/update payload for directors. The portrait is
// uploaded separately as multipart form data.
type DirectorRequest struct {
	FullName    string `json:"full_name" binding:"required" example:"Bong Joon-ho"`
	Prizes      string `json:"prizes"`
	Age         int    `json:"age" binding:"omitempty,min=0"`
	BornPlace   string `json:"born_place"`
	Nationality string `json:"nationality"`
	Bio         string `json:"bio"`
}
