package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Country is a production country, shared by movies and series.
type Country struct {
	gorm.Model
	Name string `json:"name" gorm:"type:varchar(200);not null"`
	Slug string `json:"slug" gorm:"type:varchar(200);uniqueIndex;not null"`
}

func (Country) TableName() string {
	return "countries"
}

func (co *Country) BeforeSave(tx *gorm.DB) error {
	co.Slug = slug.Make(co.Name)
	return nil
}

// CountryRequest is the create/update payload for countries.
type CountryRequest struct {
	Name string `json:"name" binding:"required" example:"South Korea"`
}
