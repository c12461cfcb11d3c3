package controllers

import (
	"errors"
	"net/http"

	"github.com/NithinKrishna10/Menu-Card/config"
	"github.com/NithinKrishna10/Menu-Card/models"
	"github.com/NithinKrishna10/Menu-Card/requests"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Leads intake is intentionally public: enquiries arrive before the
// enquirer has an account.

func GetLeadses(c *gin.Context) {
	var leads []models.Leads
	if err := config.DB.Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch leads", "error": err.Error()})
		return
	}

	if len(leads) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Leads not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Leads successfully fetched",
		"data":        leads,
	})
}

func GetLeads(c *gin.Context) {
	id := c.Param("id")

	var leads models.Leads
	if err := config.DB.First(&leads, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Leads not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch leads", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Leads successfully fetched",
		"data":        leads,
	})
}

func CreateLeads(c *gin.Context) {
	var req requests.CreateLeadsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	leads := models.Leads{
		Name:      req.Name,
		Contact:   req.Contact,
		Place:     req.Place,
		Price:     req.Price,
		Franchise: req.Franchise,
	}

	if err := config.DB.Create(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create leads", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status_code": http.StatusCreated,
		"message":     "Leads successfully created",
		"data":        leads,
	})
}

func DeleteLeads(c *gin.Context) {
	id := c.Param("id")

	var leads models.Leads
	if err := config.DB.First(&leads, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Leads not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch leads", "error": err.Error()})
		return
	}

	// Leads are removed physically, there is no soft-delete path.
	if err := config.DB.Delete(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete leads", "error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{
		"status_code": http.StatusNoContent,
		"message":     "Leads successfully deleted",
		"data":        gin.H{},
	})
}
