package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Actor holds the biography of an actor. Same shape as Director but kept as
// its own table so the two casts never mix.
type Actor struct {
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

func (Actor) TableName() string {
	return "actors"
}

func (a *Actor) BeforeSave(tx *gorm.DB) error {
	a.Slug = slug.Make(a.FullName)
	return nil
}

// ActorRequest is the create/update payload for actors.
type ActorRequest struct {
	FullName    string `json:"full_name" binding:"required" example:"Song Kang-ho"`
	Prizes      string `json:"prizes"`
	Age         int    `json:"age" binding:"omitempty,min=0"`
	BornPlace   string `json:"born_place"`
	Nationality string `json:"nationality"`
	Bio         string `json:"bio"`
}
