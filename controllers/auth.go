package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"backend/models"
	"backend/services/activity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type AuthController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewAuthController(db *gorm.DB, activityService *activity.ActivityService) *AuthController {
	return &AuthController{
		DB:              db,
		activityService: activityService,
	}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"operator1"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Message string `json:"message" example:"login successful"`
	Role    string `json:"role" example:"editor"`
}

// Register godoc
// @Summary      Register an operator account
// @Tags         Auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        username formData string true "Username"
// @Param        password formData string true "Password"
// @Param        email formData string true "Email"
// @Param        role formData string false "Role (admin/editor/regular)"
// @Param        avatar formData file false "Avatar image"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Router       /register [post]
func (ac *AuthController) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	email := c.PostForm("email")
	role := c.PostForm("role")

	if username == "" || password == "" || email == "" {
		c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Error: "username, password and email are required"})
		return
	}

	avatarPath := ""
	file, err := c.FormFile("avatar")
	if err == nil && file != nil {
		ext := filepath.Ext(file.Filename)
		fileName := fmt.Sprintf("avatar_%d%s", time.Now().UnixNano(), ext)
		avatarDir := filepath.Join("uploads", "avatars")

		if err := os.MkdirAll(avatarDir, 0755); err != nil {
			c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Error: "failed to create avatar directory"})
			return
		}

		filePath := filepath.Join(avatarDir, fileName)
		if err := c.SaveUploadedFile(file, filePath); err != nil {
			c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Error: "failed to store avatar"})
			return
		}
		avatarPath = "/" + filePath
	}

	userRole := models.RoleRegular
	if role != "" {
		switch role {
		case models.RoleAdmin, models.RoleEditor, models.RoleRegular:
			userRole = role
		default:
			c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Error: "invalid role"})
			return
		}
	}

	user := models.User{
		Username: username,
		Password: password,
		Email:    email,
		Role:     userRole,
		Avatar:   avatarPath,
	}

	if err := user.HashPassword(); err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Error: "failed to hash password"})
		return
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Error: "username or email already taken"})
		return
	}

	ac.activityService.RecordActivity(models.ActivityUser, fmt.Sprintf("operator %q registered", username))

	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "registration successful",
		Data: gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
			"avatar":   user.Avatar,
		},
	})
}

// Login godoc
// @Summary      Log in and receive a token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login body LoginRequest true "Credentials"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  Response
// @Failure      401  {object}  Response
// @Router       /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Error: "invalid request body"})
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, Response{Code: http.StatusUnauthorized, Error: "invalid username or password"})
		return
	}

	if err := user.ComparePassword(req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, Response{Code: http.StatusUnauthorized, Error: "invalid username or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Error: "failed to sign token"})
		return
	}

	ac.activityService.RecordActivity(models.ActivityUser, fmt.Sprintf("operator %q logged in", user.Username))

	c.JSON(http.StatusOK, LoginResponse{
		Token:   tokenString,
		Message: "login successful",
		Role:    user.Role,
	})
}

// GetUserInfo godoc
// @Summary      Current operator info
// @Tags         Auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Router       /user/info [get]
func (ac *AuthController) GetUserInfo(c *gin.Context) {
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, Response{Code: http.StatusUnauthorized, Error: "not authenticated"})
		return
	}

	userClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, Response{Code: http.StatusUnauthorized, Error: "invalid token claims"})
		return
	}

	rawID, ok := userClaims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, Response{Code: http.StatusUnauthorized, Error: "invalid token claims"})
		return
	}
	userID := uint(rawID)

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Error: "operator not found"})
		return
	}

	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Data: user})
}
