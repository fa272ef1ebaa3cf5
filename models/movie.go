package models

import (
	"errors"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ErrInvalidReleaseYear is returned when a release year is not exactly four
// digits.
var ErrInvalidReleaseYear = errors.New("release year must be exactly 4 digits")

// Movie is the top-level catalog record for a film. Reference entities are
// shared, not owned: deleting a movie never deletes its genres, people or
// countries.
type Movie struct {
	gorm.Model
	Name        string     `json:"name" gorm:"type:varchar(200);not null"`
	Slug        string     `json:"slug" gorm:"type:varchar(200);uniqueIndex;not null"`
	Genres      []Genre    `json:"genres" gorm:"many2many:movie_genres;"`
	Directors   []Director `json:"directors" gorm:"many2many:movie_directors;"`
	Actors      []Actor    `json:"actors" gorm:"many2many:movie_actors;"`
	ReleaseYear string     `json:"release_year" gorm:"type:varchar(4);not null"`
	Countries   []Country  `json:"countries" gorm:"many2many:movie_countries;"`
	AgeLimitID  uint       `json:"age_limit_id" gorm:"not null"`
	AgeLimit    AgeLimit   `json:"age_limit" gorm:"foreignKey:AgeLimitID"`
	PlatformID  uint       `json:"platform_id" gorm:"not null"`
	Platform    Platform   `json:"platform" gorm:"foreignKey:PlatformID"`
	Summary     string     `json:"summary" gorm:"type:text"`
}

func (Movie) TableName() string {
	return "movies"
}

func (m *Movie) BeforeSave(tx *gorm.DB) error {
	if !validReleaseYear(m.ReleaseYear) {
		return ErrInvalidReleaseYear
	}
	m.Slug = slug.Make(m.Name)
	return nil
}

func validReleaseYear(year string) bool {
	if len(year) != 4 {
		return false
	}
	for _, r := range year {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MovieRequest is the create/update payload for movies. All relation ids must
// reference existing rows.
type MovieRequest struct {
	Name        string `json:"name" binding:"required" example:"Parasite"`
	GenreIDs    []uint `json:"genre_ids" binding:"required,min=1"`
	DirectorIDs []uint `json:"director_ids" binding:"required,min=1"`
	ActorIDs    []uint `json:"actor_ids" binding:"required,min=1"`
	ReleaseYear string `json:"release_year" binding:"required,len=4" example:"2019"`
	CountryIDs  []uint `json:"country_ids" binding:"required,min=1"`
	AgeLimitID  uint   `json:"age_limit_id" binding:"required"`
	PlatformID  uint   `json:"platform_id" binding:"required"`
	Summary     string `json:"summary"`
}

// MovieResponse is the flattened external representation used by the public
// listing: scalar fields, related slugs, and the nested age limit and
// platform records.
type MovieResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	ReleaseYear string   `json:"release_year"`
	Summary     string   `json:"summary"`
	Genres      []string `json:"genres"`
	Directors   []string `json:"directors"`
	Actors      []string `json:"actors"`
	Countries   []string `json:"countries"`
	AgeLimit    AgeLimit `json:"age_limit"`
	Platform    Platform `json:"platform"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// NewMovieResponse flattens a movie with preloaded relations.
func NewMovieResponse(m Movie) MovieResponse {
	resp := MovieResponse{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		ReleaseYear: m.ReleaseYear,
		Summary:     m.Summary,
		Genres:      make([]string, len(m.Genres)),
		Directors:   make([]string, len(m.Directors)),
		Actors:      make([]string, len(m.Actors)),
		Countries:   make([]string, len(m.Countries)),
		AgeLimit:    m.AgeLimit,
		Platform:    m.Platform,
		CreatedAt:   m.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   m.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	for i, g := range m.Genres {
		resp.Genres[i] = g.Slug
	}
	for i, d := range m.Directors {
		resp.Directors[i] = d.Slug
	}
	for i, a := range m.Actors {
		resp.Actors[i] = a.Slug
	}
	for i, co := range m.Countries {
		resp.Countries[i] = co.Slug
	}
	return resp
}
