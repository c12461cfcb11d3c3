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

func GetAdvertisements(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var advertisements []models.Advertisement
	err := config.DB.
		Where("created_by_user_id = ?", user.ID).
		Order("position").
		Find(&advertisements).Error

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch advertisements", "error": err.Error()})
		return
	}

	if len(advertisements) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Advertisement not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Advertisement successfully fetched",
		"data":        advertisements,
	})
}

func GetAdvertisement(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var advertisement models.Advertisement
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", id, user.ID).
		First(&advertisement).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Advertisement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch advertisement", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Advertisement successfully fetched",
		"data":        advertisement,
	})
}

func CreateAdvertisement(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req requests.CreateAdvertisementRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	name := req.Name
	if name == "" {
		name = "advertisement"
	}

	if err := utils.ValidateImage(req.Image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image: " + err.Error()})
		return
	}

	result, err := utils.UploadImage(user.UUID+"-"+name, req.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image", "error": err.Error()})
		return
	}

	advertisement := models.Advertisement{
		Name:            name,
		Image:           result.SecureURL,
		ImagePublicID:   result.PublicID,
		Position:        req.Position,
		CreatedByUserID: user.ID,
	}

	if err := config.DB.Create(&advertisement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create advertisement", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status_code": http.StatusCreated,
		"message":     "Advertisement successfully created",
		"data":        advertisement,
	})
}

func UpdateAdvertisement(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var req requests.UpdateAdvertisementRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	var advertisement models.Advertisement
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", id, user.ID).
		First(&advertisement).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Advertisement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch advertisement", "error": err.Error()})
		return
	}

	if req.Name != "" {
		advertisement.Name = req.Name
	}
	if req.Position != nil {
		advertisement.Position = *req.Position
	}

	if req.Image != nil {
		if err := utils.ValidateImage(req.Image); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image: " + err.Error()})
			return
		}

		result, err := utils.UploadImage(user.UUID+"-"+advertisement.Name, req.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image", "error": err.Error()})
			return
		}

		utils.DeleteOldImage(advertisement.ImagePublicID)
		advertisement.Image = result.SecureURL
		advertisement.ImagePublicID = result.PublicID
	}

	if err := config.DB.Save(&advertisement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update advertisement", "error": err.Error()})
		return
	}

	var updatedAdvertisement models.Advertisement
	config.DB.First(&updatedAdvertisement, advertisement.ID)

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Advertisement successfully updated",
		"data":        updatedAdvertisement,
	})
}

func DeleteAdvertisement(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var advertisement models.Advertisement
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", id, user.ID).
		First(&advertisement).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Advertisement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch advertisement", "error": err.Error()})
		return
	}

	if err := config.DB.Delete(&advertisement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete advertisement", "error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{
		"status_code": http.StatusNoContent,
		"message":     "Advertisement successfully deleted",
		"data":        gin.H{},
	})
}
