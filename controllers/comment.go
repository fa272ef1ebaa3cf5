package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"backend/models"
	"backend/services/activity"
	"backend/services/comments"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// CommentController exposes the threaded-comment operations over HTTP. The
// actual rules live in services/comments.
type CommentController struct {
	service         *comments.CommentService
	activityService *activity.ActivityService
}

func NewCommentController(service *comments.CommentService, activityService *activity.ActivityService) *CommentController {
	return &CommentController{
		service:         service,
		activityService: activityService,
	}
}

func parseCommentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid comment id"})
		return 0, false
	}
	return uint(id), true
}

// @Summary List comments
// @Description One page of comments, newest first
// @Tags Comments
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Security Bearer
// @Success 200 {object} Response{data=[]models.Comment}
// @Failure 500 {object} Response
// @Router /admin/comments [get]
func (cc *CommentController) GetAllComments(c *gin.Context) {
	page := utils.GetPage(c)
	pageSize := utils.GetPageSize(c)

	list, total, err := cc.service.List(page, pageSize)
	if err != nil {
		utils.LogError("failed to list comments", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to list comments", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "comments listed", "data": list, "total": total, "page": page, "page_size": pageSize})
}

// @Summary Get a comment
// @Tags Comments
// @Produce json
// @Param id path int true "Comment ID"
// @Security Bearer
// @Success 200 {object} Response{data=models.Comment}
// @Failure 404 {object} Response
// @Router /admin/comments/{id} [get]
func (cc *CommentController) GetCommentByID(c *gin.Context) {
	id, ok := parseCommentID(c)
	if !ok {
		return
	}

	comment, err := cc.service.GetByID(id)
	if err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("comment %d does not exist", id)})
			return
		}
		utils.LogError(fmt.Sprintf("failed to load comment %d", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to load comment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "comment loaded", "data": comment})
}

// @Summary Create a comment or a reply
// @Description A comment with a parent_id becomes a reply and marks its parent as replied
// @Tags Comments
// @Accept json
// @Produce json
// @Param comment body models.CommentRequest true "Comment"
// @Security Bearer
// @Success 201 {object} Response{data=models.Comment}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /admin/comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	comment, err := cc.service.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, comments.ErrParentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": err.Error()})
		case errors.Is(err, models.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
		default:
			utils.LogError("failed to create comment", err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to create comment", "error": err.Error()})
		}
		return
	}

	cc.activityService.RecordActivity(models.ActivityComment, fmt.Sprintf("comment %d by %q created", comment.ID, comment.Name))

	c.JSON(http.StatusCreated, gin.H{"code": http.StatusCreated, "message": "comment created", "data": comment})
}

// @Summary Edit a comment
// @Description Replaces the body and appends the edit to the comment's own history
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param comment body models.CommentEditRequest true "Edit"
// @Security Bearer
// @Success 200 {object} Response{data=models.Comment}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /admin/comments/{id} [put]
func (cc *CommentController) EditComment(c *gin.Context) {
	id, ok := parseCommentID(c)
	if !ok {
		return
	}

	var req models.CommentEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": "invalid request body", "error": err.Error()})
		return
	}

	comment, err := cc.service.Edit(id, req)
	if err != nil {
		switch {
		case errors.Is(err, comments.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("comment %d does not exist", id)})
		case errors.Is(err, models.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
		default:
			utils.LogError(fmt.Sprintf("failed to edit comment %d", id), err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to edit comment", "error": err.Error()})
		}
		return
	}

	cc.activityService.RecordActivity(models.ActivityComment, fmt.Sprintf("comment %d edited", comment.ID))

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "comment edited", "data": comment})
}

// @Summary Delete a comment thread
// @Description Removes the comment and every descendant reply
// @Tags Comments
// @Produce json
// @Param id path int true "Comment ID"
// @Security Bearer
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/comments/{id} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, ok := parseCommentID(c)
	if !ok {
		return
	}

	if err := cc.service.Delete(id); err != nil {
		if errors.Is(err, comments.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": fmt.Sprintf("comment %d does not exist", id)})
			return
		}
		utils.LogError(fmt.Sprintf("failed to delete comment %d", id), err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": http.StatusInternalServerError, "message": "failed to delete comment", "error": err.Error()})
		return
	}

	cc.activityService.RecordActivity(models.ActivityComment, fmt.Sprintf("comment %d deleted with its replies", id))

	c.JSON(http.StatusOK, gin.H{"code": http.StatusOK, "message": "comment deleted"})
}
