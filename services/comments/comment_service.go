package comments

import (
	"errors"
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

var (
	// ErrCommentNotFound is returned when an id resolves to no comment.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrParentNotFound is returned when a reply references a missing parent.
	ErrParentNotFound = errors.New("parent comment not found")
)

// CommentService owns the threaded-comment rules: attaching replies, keeping
// the edit history, and removing whole threads.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create stores a new comment. When a parent id is given the parent must
// exist; its replied flag is set in the same transaction as the insert.
func (s *CommentService) Create(req models.CommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		ParentID:     req.ParentID,
		Name:         req.Name,
		RatingNumber: req.RatingNumber,
		Text:         req.Text,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.ParentID != nil {
			var parent models.Comment
			if err := tx.First(&parent, *req.ParentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrParentNotFound
				}
				return err
			}
			if err := tx.Create(comment).Error; err != nil {
				return err
			}
			if !parent.IsBeenReplied {
				parent.IsBeenReplied = true
				return tx.Save(&parent).Error
			}
			return nil
		}
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// GetByID loads one comment.
func (s *CommentService) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// List returns one page of comments, newest first, plus the total count.
func (s *CommentService) List(page, pageSize int) ([]models.Comment, int64, error) {
	var total int64
	if err := s.db.Model(&models.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := s.db.Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// Edit replaces the comment's body and appends an entry to the same comment's
// edit history. The history line records the edit timestamp and the new text,
// separated by carriage returns. A zero rating keeps the stored rating.
func (s *CommentService) Edit(id uint, req models.CommentEditRequest) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}

		now := time.Now()
		comment.PreviousText += fmt.Sprintf("edited date: %s\r%s\r",
			now.Format("2006-01-02 15:04:05"), req.Text)
		comment.Text = req.Text
		comment.EditedDate = now
		comment.IsEdited = true
		if req.RatingNumber != 0 {
			comment.RatingNumber = req.RatingNumber
		}

		return tx.Save(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment and every descendant reply. The tree is collected
// level by level and deleted in one transaction, so a failed walk leaves the
// thread intact.
func (s *CommentService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var root models.Comment
		if err := tx.First(&root, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCommentNotFound
			}
			return err
		}

		ids := []uint{root.ID}
		frontier := []uint{root.ID}
		for len(frontier) > 0 {
			var children []uint
			err := tx.Model(&models.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error
			if err != nil {
				return err
			}
			if len(children) == 0 {
				break
			}
			ids = append(ids, children...)
			frontier = children
		}

		return tx.Unscoped().Delete(&models.Comment{}, ids).Error
	})
}
