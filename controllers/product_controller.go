package controllers

import (
	"encoding/json"
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

func GetProducts(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var products []models.Product
	err := config.DB.
		Preload("Portions").
		Preload("Category").
		Where("created_by_user_id = ?", user.ID).
		Find(&products).Error

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products", "error": err.Error()})
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Product successfully fetched",
		"data":        products,
	})
}

func GetProduct(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var product models.Product
	err := config.DB.
		Preload("Portions").
		Preload("Category").
		Where("id = ? AND created_by_user_id = ?", id, user.ID).
		First(&product).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Product successfully fetched",
		"data":        product,
	})
}

func CreateProduct(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req requests.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	// The referenced category must exist and belong to the caller.
	var category models.Category
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", req.CategoryID, user.ID).
		First(&category).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	portions, err := parsePortions(req.Portions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid portions data", "error": err.Error()})
		return
	}

	stockAvailable := true
	if req.StockAvailable != nil {
		stockAvailable = *req.StockAvailable
	}

	product := models.Product{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		StockAvailable:  stockAvailable,
		Portion:         req.Portion,
		CategoryID:      req.CategoryID,
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
		product.Image = result.SecureURL
		product.ImagePublicID = result.PublicID
	}

	// The product row and its portions commit or roll back together.
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		if product.Portion {
			for _, p := range portions {
				portion := models.ProductPortion{
					Name:           p.Name,
					Price:          p.Price,
					StockAvailable: p.StockAvailable,
					ProductID:      product.ID,
				}
				if err := tx.Create(&portion).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product", "error": err.Error()})
		return
	}

	var createdProduct models.Product
	config.DB.Preload("Portions").Preload("Category").First(&createdProduct, product.ID)

	c.JSON(http.StatusCreated, gin.H{
		"status_code": http.StatusCreated,
		"message":     "Product successfully created",
		"data":        createdProduct,
	})
}

func UpdateProduct(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var req requests.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": err.Error()})
		return
	}

	var product models.Product
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", id, user.ID).
		First(&product).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product", "error": err.Error()})
		return
	}

	if req.CategoryID != 0 {
		var category models.Category
		err := config.DB.
			Where("id = ? AND created_by_user_id = ?", req.CategoryID, user.ID).
			First(&category).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		product.CategoryID = req.CategoryID
	}

	portions, err := parsePortions(req.Portions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid portions data", "error": err.Error()})
		return
	}

	// Absent fields stay untouched.
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockAvailable != nil {
		product.StockAvailable = *req.StockAvailable
	}
	if req.Portion != nil {
		product.Portion = *req.Portion
	}

	if req.Image != nil {
		if err := utils.ValidateImage(req.Image); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image: " + err.Error()})
			return
		}

		result, err := utils.UploadImage(product.Name, req.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image", "error": err.Error()})
			return
		}

		utils.DeleteOldImage(product.ImagePublicID)
		product.Image = result.SecureURL
		product.ImagePublicID = result.PublicID
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		// Upsert portions by name: existing ones are updated in place,
		// new names are inserted. A product not flagged for portions
		// ignores the portions field, same as on create.
		if !product.Portion {
			return nil
		}
		for _, p := range portions {
			var portion models.ProductPortion
			err := tx.
				Where("product_id = ? AND name = ?", product.ID, p.Name).
				First(&portion).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				portion = models.ProductPortion{
					Name:           p.Name,
					Price:          p.Price,
					StockAvailable: p.StockAvailable,
					ProductID:      product.ID,
				}
				if err := tx.Create(&portion).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			portion.Price = p.Price
			portion.StockAvailable = p.StockAvailable
			if err := tx.Save(&portion).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product", "error": err.Error()})
		return
	}

	var updatedProduct models.Product
	config.DB.Preload("Portions").Preload("Category").First(&updatedProduct, product.ID)

	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"message":     "Product successfully updated",
		"data":        updatedProduct,
	})
}

func DeleteProduct(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var product models.Product
	err := config.DB.
		Where("id = ? AND created_by_user_id = ?", id, user.ID).
		First(&product).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product", "error": err.Error()})
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product", "error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{
		"status_code": http.StatusNoContent,
		"message":     "Product successfully deleted",
		"data":        gin.H{},
	})
}

func parsePortions(raw string) ([]requests.PortionInput, error) {
	if raw == "" {
		return nil, nil
	}
	var portions []requests.PortionInput
	if err := json.Unmarshal([]byte(raw), &portions); err != nil {
		return nil, err
	}
	return portions, nil
}
