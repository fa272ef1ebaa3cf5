package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Genre is a lookup entity shared by movies and series.
type Genre struct {
	gorm.Model
	Title string `json:"title" gorm:"type:varchar(200);not null"`
	Slug  string `json:"slug" gorm:"type:varchar(200);uniqueIndex;not null"`
}

func (Genre) TableName() string {
	return "genres"
}

// BeforeSave recomputes the slug from the title on every write. Renaming a
// genre therefore changes its public identifier.
func (g *Genre) BeforeSave(tx *gorm.DB) error {
	g.Slug = slug.Make(g.Title)
	return nil
}

// GenreRequest is the create/update payload for genres.
type GenreRequest struct {
	Title string `json:"title" binding:"required" example:"Science Fiction"`
}
