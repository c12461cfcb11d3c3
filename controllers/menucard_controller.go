package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/NithinKrishna10/Menu-Card/config"
	"github.com/NithinKrishna10/Menu-Card/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The public menu card is read-only and keyed by the owner's uuid, so
// responses are cached briefly instead of invalidated on write.
const menuCardCacheTTL = 60 * time.Second

func cacheGet(key string) ([]byte, bool) {
	if config.RDB == nil {
		return nil, false
	}
	b, err := config.RDB.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func cacheSet(key string, payload gin.H) []byte {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	if config.RDB != nil {
		config.RDB.Set(context.Background(), key, b, menuCardCacheTTL)
	}
	return b
}

// menuCardUser resolves the user a public request refers to. Writes the
// error response itself when resolution fails.
func menuCardUser(c *gin.Context) *models.User {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return nil
	}

	var user models.User
	if err := config.DB.Where("uuid = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return nil
	}
	return &user
}

func GetMenuCategories(c *gin.Context) {
	user := menuCardUser(c)
	if user == nil {
		return
	}

	cacheKey := "menucard:categories:" + user.UUID
	if b, ok := cacheGet(cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

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

	payload := gin.H{
		"status_code": http.StatusOK,
		"message":     "Category successfully fetched",
		"data":        categories,
	}
	if b := cacheSet(cacheKey, payload); b != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}
	c.JSON(http.StatusOK, payload)
}

func GetMenuCategory(c *gin.Context) {
	user := menuCardUser(c)
	if user == nil {
		return
	}
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

func GetMenuProducts(c *gin.Context) {
	user := menuCardUser(c)
	if user == nil {
		return
	}
	categoryID := c.Query("category_id")

	cacheKey := "menucard:products:" + user.UUID + ":" + categoryID
	if b, ok := cacheGet(cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	query := config.DB.
		Preload("Portions").
		Preload("Category").
		Where("created_by_user_id = ?", user.ID)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products", "error": err.Error()})
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	payload := gin.H{
		"status_code": http.StatusOK,
		"message":     "Product successfully fetched",
		"data":        products,
	}
	if b := cacheSet(cacheKey, payload); b != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}
	c.JSON(http.StatusOK, payload)
}

func GetMenuProduct(c *gin.Context) {
	user := menuCardUser(c)
	if user == nil {
		return
	}
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

func SearchMenuProducts(c *gin.Context) {
	user := menuCardUser(c)
	if user == nil {
		return
	}

	productName := c.Query("product_name")

	cacheKey := "menucard:search:" + user.UUID + ":" + productName
	if b, ok := cacheGet(cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	var products []models.Product
	err := config.DB.
		Preload("Portions").
		Preload("Category").
		Where("created_by_user_id = ? AND name LIKE ?", user.ID, "%"+productName+"%").
		Find(&products).Error

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products", "error": err.Error()})
		return
	}

	if len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	payload := gin.H{
		"status_code": http.StatusOK,
		"message":     "Product successfully fetched",
		"data":        products,
	}
	if b := cacheSet(cacheKey, payload); b != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}
	c.JSON(http.StatusOK, payload)
}

func GetMenuAdvertisements(c *gin.Context) {
	user := menuCardUser(c)
	if user == nil {
		return
	}

	cacheKey := "menucard:advertisements:" + user.UUID
	if b, ok := cacheGet(cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

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

	payload := gin.H{
		"status_code": http.StatusOK,
		"message":     "Advertisement successfully fetched",
		"data":        advertisements,
	}
	if b := cacheSet(cacheKey, payload); b != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}
	c.JSON(http.StatusOK, payload)
}
