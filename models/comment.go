package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrInvalidRating is returned when a comment rating is outside 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Comment is a node in a threaded discussion. A comment with no parent is a
// root comment; a comment with a parent is a reply. Edits keep a running
// plain-text history in PreviousText.
type Comment struct {
	gorm.Model
	ParentID      *uint     `json:"parent_id" gorm:"index"`
	Parent        *Comment  `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Name          string    `json:"name" gorm:"type:varchar(150);not null"`
	EditedDate    time.Time `json:"edited_date"`
	IsReply       bool      `json:"is_reply" gorm:"default:false"`
	IsBeenReplied bool      `json:"is_been_replied" gorm:"default:false"`
	IsEdited      bool      `json:"is_edited" gorm:"default:false"`
	RatingNumber  int       `json:"rating_number" gorm:"default:0"`
	Text          string    `json:"text" gorm:"type:text;not null"`
	PreviousText  string    `json:"previous_text" gorm:"type:text"`
}

func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate stamps EditedDate at insert time (it starts equal to the
// creation instant; IsEdited is the reliable signal that a later edit
// happened) and derives the reply flag from the parent pointer.
func (cm *Comment) BeforeCreate(tx *gorm.DB) error {
	if cm.EditedDate.IsZero() {
		cm.EditedDate = time.Now()
	}
	cm.IsReply = cm.ParentID != nil
	return nil
}

// BeforeSave rejects ratings outside 1..5. Zero means "not rated" and is
// always accepted.
func (cm *Comment) BeforeSave(tx *gorm.DB) error {
	if cm.RatingNumber != 0 && (cm.RatingNumber < 1 || cm.RatingNumber > 5) {
		return ErrInvalidRating
	}
	return nil
}

// CommentRequest is the payload for creating a comment or a reply.
type CommentRequest struct {
	ParentID     *uint  `json:"parent_id"`
	Name         string `json:"name" binding:"required"`
	RatingNumber int    `json:"rating_number"`
	Text         string `json:"text" binding:"required"`
}

// CommentEditRequest is the payload for editing a comment's body. A zero
// rating leaves the stored rating untouched.
type CommentEditRequest struct {
	Text         string `json:"text" binding:"required"`
	RatingNumber int    `json:"rating_number"`
}
