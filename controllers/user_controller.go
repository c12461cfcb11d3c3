package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/NithinKrishna10/Menu-Card/config"
	"github.com/NithinKrishna10/Menu-Card/middleware"
	"github.com/NithinKrishna10/Menu-Card/models"
	"github.com/NithinKrishna10/Menu-Card/requests"
	"github.com/NithinKrishna10/Menu-Card/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func RegisterUser(c *gin.Context) {
	var req requests.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	// Uniqueness pre-checks run before anything is written.
	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Email is already registered"})
		return
	}

	config.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Username not available"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password", "error": err.Error()})
		return
	}

	user := models.User{
		UUID:           uuid.NewString(),
		Name:           req.Name,
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
	}

	if req.Image != nil {
		if err := utils.ValidateImage(req.Image); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image: " + err.Error()})
			return
		}

		result, err := utils.UploadImage(req.Name, req.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image", "error": err.Error()})
			return
		}
		user.ImageURL = result.SecureURL
		user.ImagePublicID = result.PublicID
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status_code": http.StatusCreated,
		"message":     "User successfully created",
		"data":        user,
	})
}

func Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	var user models.User
	err := config.DB.Where("username = ?", req.Username).First(&user).Error
	if err != nil || !utils.CheckPassword(user.HashedPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Login successful",
		"data":        gin.H{"access_token": token, "token_type": "bearer", "user": user},
	})
}

func GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "User successfully fetched",
		"data":        user,
	})
}

// GetUserByUsername is the public profile read. Soft-deleted accounts
// are not served.
func GetUserByUsername(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	err := config.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "User successfully fetched",
		"data":        user,
	})
}

func GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	itemsPerPage, _ := strconv.Atoi(c.DefaultQuery("items_per_page", "10"))
	if itemsPerPage < 1 {
		itemsPerPage = 10
	}

	var total int64
	if err := config.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users", "error": err.Error()})
		return
	}

	var users []models.User
	err := config.DB.
		Offset((page - 1) * itemsPerPage).
		Limit(itemsPerPage).
		Find(&users).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users", "error": err.Error()})
		return
	}

	totalPages := int(total) / itemsPerPage
	if int(total)%itemsPerPage != 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code":    http.StatusOK,
		"message":        "Users successfully fetched",
		"data":           users,
		"count":          total,
		"page":           page,
		"items_per_page": itemsPerPage,
		"total_pages":    totalPages,
	})
}

func UpdateUser(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req requests.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	if req.Email != "" && req.Email != user.Email {
		var count int64
		config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "Email is already registered"})
			return
		}
		user.Email = req.Email
	}

	if req.Username != "" && req.Username != user.Username {
		var count int64
		config.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "Username not available"})
			return
		}
		user.Username = req.Username
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Image != nil {
		if err := utils.ValidateImage(req.Image); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image: " + err.Error()})
			return
		}

		result, err := utils.UploadImage(user.Name, req.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image", "error": err.Error()})
			return
		}

		utils.DeleteOldImage(user.ImagePublicID)
		user.ImageURL = result.SecureURL
		user.ImagePublicID = result.PublicID
	}

	if err := config.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user", "error": err.Error()})
		return
	}

	var updatedUser models.User
	config.DB.First(&updatedUser, user.ID)

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "User successfully updated",
		"data":        updatedUser,
	})
}

func DeleteUser(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := config.DB.Delete(&models.User{}, user.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user", "error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{
		"status_code": http.StatusNoContent,
		"message":     "User successfully deleted",
		"data":        gin.H{},
	})
}

// DbDeleteUser removes the row physically. Superuser only.
func DbDeleteUser(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username query parameter is required"})
		return
	}

	var user models.User
	err := config.DB.Unscoped().Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user", "error": err.Error()})
		return
	}

	if err := config.DB.Unscoped().Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user", "error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{
		"status_code": http.StatusNoContent,
		"message":     "User deleted from the database",
		"data":        gin.H{},
	})
}
