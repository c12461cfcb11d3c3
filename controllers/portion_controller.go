package controllers

import (
	"errors"
	"net/http"

	"github.com/NithinKrishna10/Menu-Card/config"
	"github.com/NithinKrishna10/Menu-Card/middleware"
	"github.com/NithinKrishna10/Menu-Card/models"
	"github.com/NithinKrishna10/Menu-Card/requests"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deleting a portion only removes that single row while the product
// still has more than portionFloor portions; at or below the floor the
// delete cascades to every portion of the product. Provisional behavior
// pending product-owner confirmation.
const portionFloor = 2

// ownedProduct loads a product scoped to the caller.
func ownedProduct(userID uint, productID uint) (*models.Product, error) {
	var product models.Product
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", productID, userID).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func GetPortions(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var query struct {
		ProductID uint `form:"product_id" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	if _, err := ownedProduct(user.ID, query.ProductID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	var portions []models.ProductPortion
	if err := config.DB.Where("product_id = ?", query.ProductID).Find(&portions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch portions", "error": err.Error()})
		return
	}

	if len(portions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Portion not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Portion successfully fetched",
		"data":        portions,
	})
}

func CreatePortion(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req requests.CreatePortionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	if _, err := ownedProduct(user.ID, req.ProductID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	// Portion names are unique per product; checked here, not
	// constrained in the schema.
	var existing models.ProductPortion
	err := config.DB.
		Where("product_id = ? AND name = ?", req.ProductID, req.Name).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Portion name already exists for this product"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch portion", "error": err.Error()})
		return
	}

	portion := models.ProductPortion{
		Name:           req.Name,
		Price:          req.Price,
		StockAvailable: req.StockAvailable,
		ProductID:      req.ProductID,
	}

	if err := config.DB.Create(&portion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create portion", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status_code": http.StatusCreated,
		"message":     "Portion successfully created",
		"data":        portion,
	})
}

func UpdatePortion(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var req requests.UpdatePortionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	var portion models.ProductPortion
	if err := config.DB.First(&portion, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Portion not found"})
		return
	}

	if _, err := ownedProduct(user.ID, portion.ProductID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Portion not found"})
		return
	}

	if req.Name != "" && req.Name != portion.Name {
		var existing models.ProductPortion
		err := config.DB.
			Where("product_id = ? AND name = ?", portion.ProductID, req.Name).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "Portion name already exists for this product"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch portion", "error": err.Error()})
			return
		}
		portion.Name = req.Name
	}
	if req.Price != nil {
		portion.Price = *req.Price
	}
	if req.StockAvailable != nil {
		portion.StockAvailable = *req.StockAvailable
	}

	if err := config.DB.Save(&portion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update portion", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Portion successfully updated",
		"data":        portion,
	})
}

func DeletePortion(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var portion models.ProductPortion
	if err := config.DB.First(&portion, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Portion not found"})
		return
	}

	if _, err := ownedProduct(user.ID, portion.ProductID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Portion not found"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.ProductPortion{}).
		Where("product_id = ?", portion.ProductID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count portions", "error": err.Error()})
		return
	}

	if count > portionFloor {
		if err := config.DB.Delete(&portion).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete portion", "error": err.Error()})
			return
		}
	} else {
		if err := config.DB.
			Where("product_id = ?", portion.ProductID).
			Delete(&models.ProductPortion{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete portions", "error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusNoContent, gin.H{
		"status_code": http.StatusNoContent,
		"message":     "Portion successfully deleted",
		"data":        gin.H{},
	})
}
