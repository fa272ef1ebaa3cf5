package models

import (
	"errors"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Broadcast statuses a series can be in.
const (
	SeriesStatusAiring    = "airing"
	SeriesStatusFinished  = "finished"
	SeriesStatusCancelled = "cancelled"
)

// ErrInvalidSeriesStatus is returned when a series status is not one of the
// enumerated values.
var ErrInvalidSeriesStatus = errors.New("series status must be airing, finished or cancelled")

// Series is the top-level catalog record for a show. Same relational shape as
// Movie plus a broadcast status and the channel that airs it. The channel is a
// free string, independent of the Platform relation. Directors may be empty.
type Series struct {
	gorm.Model
	Name        string     `json:"name" gorm:"type:varchar(200);not null"`
	Slug        string     `json:"slug" gorm:"type:varchar(200);uniqueIndex;not null"`
	Genres      []Genre    `json:"genres" gorm:"many2many:series_genres;"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null"`
	Directors   []Director `json:"directors" gorm:"many2many:series_directors;"`
	Actors      []Actor    `json:"actors" gorm:"many2many:series_actors;"`
	ReleaseYear string     `json:"release_year" gorm:"type:varchar(4);not null"`
	Countries   []Country  `json:"countries" gorm:"many2many:series_countries;"`
	AgeLimitID  uint       `json:"age_limit_id" gorm:"not null"`
	AgeLimit    AgeLimit   `json:"age_limit" gorm:"foreignKey:AgeLimitID"`
	PlatformID  uint       `json:"platform_id" gorm:"not null"`
	Platform    Platform   `json:"platform" gorm:"foreignKey:PlatformID"`
	Channel     string     `json:"channel" gorm:"type:varchar(200)"`
	Summary     string     `json:"summary" gorm:"type:text"`
}

func (Series) TableName() string {
	return "series"
}

func (s *Series) BeforeSave(tx *gorm.DB) error {
	switch s.Status {
	case SeriesStatusAiring, SeriesStatusFinished, SeriesStatusCancelled:
	default:
		return ErrInvalidSeriesStatus
	}
	if !validReleaseYear(s.ReleaseYear) {
		return ErrInvalidReleaseYear
	}
	s.Slug = slug.Make(s.Name)
	return nil
}

// SeriesRequest is the create/update payload for series. Directors are
// optional, the rest of the relations must be present.
type SeriesRequest struct {
	Name        string `json:"name" binding:"required" example:"Severance"`
	GenreIDs    []uint `json:"genre_ids" binding:"required,min=1"`
	Status      string `json:"status" binding:"required,oneof=airing finished cancelled" example:"airing"`
	DirectorIDs []uint `json:"director_ids"`
	ActorIDs    []uint `json:"actor_ids" binding:"required,min=1"`
	ReleaseYear string `json:"release_year" binding:"required,len=4" example:"2022"`
	CountryIDs  []uint `json:"country_ids" binding:"required,min=1"`
	AgeLimitID  uint   `json:"age_limit_id" binding:"required"`
	PlatformID  uint   `json:"platform_id" binding:"required"`
	Channel     string `json:"channel"`
	Summary     string `json:"summary"`
}
