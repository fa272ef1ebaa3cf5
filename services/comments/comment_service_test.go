package comments

import (
	"fmt"
	"strings"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *CommentService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Comment{}))

	return NewCommentService(db)
}

func TestCreateRootComment(t *testing.T) {
	svc := newTestService(t)

	comment, err := svc.Create(models.CommentRequest{
		Name: "alice",
		Text: "loved it",
	})
	require.NoError(t, err)

	assert.NotZero(t, comment.ID)
	assert.Nil(t, comment.ParentID)
	assert.False(t, comment.IsReply)
	assert.False(t, comment.IsBeenReplied)
	assert.False(t, comment.IsEdited)
	assert.Empty(t, comment.PreviousText)
}

func TestCreateReplyMarksParent(t *testing.T) {
	svc := newTestService(t)

	root, err := svc.Create(models.CommentRequest{Name: "alice", Text: "loved it"})
	require.NoError(t, err)

	reply, err := svc.Create(models.CommentRequest{
		ParentID: &root.ID,
		Name:     "bob",
		Text:     "agreed",
	})
	require.NoError(t, err)
	assert.True(t, reply.IsReply)

	reloaded, err := svc.GetByID(root.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsBeenReplied)
}

func TestCreateReplyMissingParent(t *testing.T) {
	svc := newTestService(t)

	missing := uint(9999)
	_, err := svc.Create(models.CommentRequest{
		ParentID: &missing,
		Name:     "bob",
		Text:     "orphan",
	})
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestCreateRejectsInvalidRating(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(models.CommentRequest{
		Name:         "alice",
		Text:         "meh",
		RatingNumber: 7,
	})
	assert.ErrorIs(t, err, models.ErrInvalidRating)
}

func TestEditAppendsHistoryToSameComment(t *testing.T) {
	svc := newTestService(t)

	comment, err := svc.Create(models.CommentRequest{Name: "alice", Text: "first draft"})
	require.NoError(t, err)

	edited, err := svc.Edit(comment.ID, models.CommentEditRequest{Text: "second draft"})
	require.NoError(t, err)

	assert.Equal(t, comment.ID, edited.ID)
	assert.Equal(t, "second draft", edited.Text)
	assert.True(t, edited.IsEdited)
	assert.Contains(t, edited.PreviousText, "edited date: ")
	assert.Contains(t, edited.PreviousText, "second draft\r")

	// A second edit appends, it never overwrites.
	edited, err = svc.Edit(comment.ID, models.CommentEditRequest{Text: "third draft"})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(edited.PreviousText, "edited date: "))
	assert.Contains(t, edited.PreviousText, "second draft\r")
	assert.Contains(t, edited.PreviousText, "third draft\r")
}

func TestEditKeepsRatingWhenZero(t *testing.T) {
	svc := newTestService(t)

	comment, err := svc.Create(models.CommentRequest{
		Name:         "alice",
		Text:         "solid",
		RatingNumber: 4,
	})
	require.NoError(t, err)

	edited, err := svc.Edit(comment.ID, models.CommentEditRequest{Text: "still solid"})
	require.NoError(t, err)
	assert.Equal(t, 4, edited.RatingNumber)

	edited, err = svc.Edit(comment.ID, models.CommentEditRequest{Text: "even better", RatingNumber: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, edited.RatingNumber)
}

func TestEditMissingComment(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Edit(9999, models.CommentEditRequest{Text: "nope"})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteMissingComment(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(9999)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteCascadesThroughThread(t *testing.T) {
	svc := newTestService(t)

	root, err := svc.Create(models.CommentRequest{Name: "alice", Text: "root"})
	require.NoError(t, err)

	// Three levels of replies under the root, two replies per level head.
	child, err := svc.Create(models.CommentRequest{ParentID: &root.ID, Name: "bob", Text: "child"})
	require.NoError(t, err)
	_, err = svc.Create(models.CommentRequest{ParentID: &root.ID, Name: "carol", Text: "sibling"})
	require.NoError(t, err)
	grandchild, err := svc.Create(models.CommentRequest{ParentID: &child.ID, Name: "dave", Text: "grandchild"})
	require.NoError(t, err)
	_, err = svc.Create(models.CommentRequest{ParentID: &grandchild.ID, Name: "erin", Text: "great-grandchild"})
	require.NoError(t, err)

	// An unrelated thread must survive.
	other, err := svc.Create(models.CommentRequest{Name: "frank", Text: "other thread"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(root.ID))

	var count int64
	require.NoError(t, svc.db.Model(&models.Comment{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Hard delete: not even soft-deleted rows remain.
	var unscoped int64
	require.NoError(t, svc.db.Unscoped().Model(&models.Comment{}).Count(&unscoped).Error)
	assert.Equal(t, int64(1), unscoped)

	survivor, err := svc.GetByID(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "other thread", survivor.Text)
}

func TestListPaginatesNewestFirst(t *testing.T) {
	svc := newTestService(t)

	for i := 1; i <= 5; i++ {
		_, err := svc.Create(models.CommentRequest{
			Name: "alice",
			Text: fmt.Sprintf("comment %d", i),
		})
		require.NoError(t, err)
	}

	page, total, err := svc.List(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	page, _, err = svc.List(3, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}
