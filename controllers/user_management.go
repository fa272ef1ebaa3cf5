package controllers

import (
	"net/http"

	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserManagementController struct {
	DB *gorm.DB
}

func NewUserManagementController(db *gorm.DB) *UserManagementController {
	return &UserManagementController{DB: db}
}

// GetAllUsers godoc
// @Summary      List operator accounts
// @Tags         Users
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  Response
// @Failure      500  {object}  Response
// @Router       /admin/users [get]
func (uc *UserManagementController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Error: "failed to list operators"})
		return
	}
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Data: users})
}

// GetUser godoc
// @Summary      Get an operator account
// @Tags         Users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Security     Bearer
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /admin/users/{id} [get]
func (uc *UserManagementController) GetUser(c *gin.Context) {
	id := c.Param("id")
	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Error: "operator not found"})
		return
	}
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Data: user})
}

// UpdateUser godoc
// @Summary      Update an operator account
// @Tags         Users
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Param        username formData string false "Username"
// @Param        password formData string false "Password"
// @Param        email formData string false "Email"
// @Param        role formData string false "Role"
// @Security     Bearer
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Router       /admin/users/{id} [put]
func (uc *UserManagementController) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Error: "operator not found"})
		return
	}

	if username := c.PostForm("username"); username != "" {
		user.Username = username
	}
	if email := c.PostForm("email"); email != "" {
		user.Email = email
	}
	if password := c.PostForm("password"); password != "" {
		user.Password = password
		if err := user.HashPassword(); err != nil {
			c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Error: "failed to hash password"})
			return
		}
	}
	if role := c.PostForm("role"); role != "" {
		switch role {
		case models.RoleAdmin, models.RoleEditor, models.RoleRegular:
			user.Role = role
		default:
			c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Error: "invalid role"})
			return
		}
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Error: "failed to update operator"})
		return
	}

	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "operator updated", Data: user})
}

// DeleteUser godoc
// @Summary      Delete an operator account
// @Tags         Users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Security     Bearer
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /admin/users/{id} [delete]
func (uc *UserManagementController) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	var user models.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Error: "operator not found"})
		return
	}

	if err := uc.DB.Unscoped().Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Error: "failed to delete operator"})
		return
	}

	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "operator deleted"})
}
