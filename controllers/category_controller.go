package controllers

import (
	"errors"
	"net/http"

	"github.com/NithinKrishna10/Menu-Card/config"
	"github.com/NithinKrishna10/Menu-Card/middleware"
	"github.com/NithinKrishna10/Menu-Card/models"
	"github.com/NithinKrishna10/Menu-Card/requests"
	"github.com/NithinKrishna10/Menu-Card/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetCategories(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var categories []models.Category
	err := config.DB.
		Where("created_by_user_id = ?", user.ID).
		Find(&categories).Error

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories", "error": err.Error()})
		return
	}

	if len(categories) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Category successfully fetched",
		"data":        categories,
	})
}

func GetCategory(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var category models.Category
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", id, user.ID).
		First(&category).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch category", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Category successfully fetched",
		"data":        category,
	})
}

func CreateCategory(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req requests.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	category := models.Category{
		Name:            req.Name,
		Description:     req.Description,
		CreatedByUserID: user.ID,
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
		category.Image = result.SecureURL
		category.ImagePublicID = result.PublicID
	}

	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create category", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status_code": http.StatusCreated,
		"message":     "Category successfully created",
		"data":        category,
	})
}

func UpdateCategory(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var req requests.UpdateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	var category models.Category
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", id, user.ID).
		First(&category).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch category", "error": err.Error()})
		return
	}

	// Absent fields stay untouched.
	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if req.Image != nil {
		if err := utils.ValidateImage(req.Image); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image: " + err.Error()})
			return
		}

		result, err := utils.UploadImage(category.Name, req.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image", "error": err.Error()})
			return
		}

		utils.DeleteOldImage(category.ImagePublicID)
		category.Image = result.SecureURL
		category.ImagePublicID = result.PublicID
	}

	if err := config.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update category", "error": err.Error()})
		return
	}

	var updatedCategory models.Category
	config.DB.First(&updatedCategory, category.ID)

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Category successfully updated",
		"data":        updatedCategory,
	})
}

func DeleteCategory(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var category models.Category
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", id, user.ID).
		First(&category).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch category", "error": err.Error()})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete category", "error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{
		"status_code": http.StatusNoContent,
		"message":     "Category successfully deleted",
		"data":        gin.H{},
	})
}
