package controllers_test

import (
	"net/http"
	"testing"

	"github.com/NithinKrishna10/Menu-Card/config"
	"github.com/NithinKrishna10/Menu-Card/models"

	"github.com/stretchr/testify/assert"
)

func seedPortionProduct(t *testing.T, userID uint, portionNames ...string) models.Product {
	t.Helper()

	category := models.Category{Name: "Drinks", CreatedByUserID: userID}
	config.DB.Create(&category)

	product := models.Product{
		Name:            "Latte",
		Price:           180,
		Portion:         true,
		CategoryID:      category.ID,
		CreatedByUserID: userID,
	}
	config.DB.Create(&product)

	for i, name := range portionNames {
		config.DB.Create(&models.ProductPortion{
			Name:           name,
			Price:          int64(100 + i*50),
			StockAvailable: true,
			ProductID:      product.ID,
		})
	}
	return product
}

func TestCreatePortion(t *testing.T) {
	router := setupTest(t)
	userA, token := createTestUser(t, "owner-a")
	product := seedPortionProduct(t, userA.ID)

	req := formRequest(t, "POST", "/user/productportion", map[string]string{
		"name":            "Small",
		"price":           "120",
		"stock_available": "true",
		"product_id":      "1",
	}, token)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	config.DB.Model(&models.ProductPortion{}).Where("product_id = ?", product.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreatePortionDuplicateName(t *testing.T) {
	router := setupTest(t)
	userA, token := createTestUser(t, "owner-a")
	seedPortionProduct(t, userA.ID, "Small")

	req := formRequest(t, "POST", "/user/productportion", map[string]string{
		"name":       "Small",
		"price":      "120",
		"product_id": "1",
	}, token)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdatePortionPartial(t *testing.T) {
	router := setupTest(t)
	userA, token := createTestUser(t, "owner-a")
	product := seedPortionProduct(t, userA.ID, "Small")

	req := formRequest(t, "PATCH", "/user/productportion/1", map[string]string{
		"price": "140",
	}, token)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var portion models.ProductPortion
	config.DB.Where("product_id = ?", product.ID).First(&portion)
	assert.Equal(t, int64(140), portion.Price)
	assert.Equal(t, "Small", portion.Name)
	assert.True(t, portion.StockAvailable)
}

func TestUpdatePortionRenameDuplicate(t *testing.T) {
	router := setupTest(t)
	userA, token := createTestUser(t, "owner-a")
	seedPortionProduct(t, userA.ID, "Small", "Large")

	req := formRequest(t, "PATCH", "/user/productportion/1", map[string]string{
		"name": "Large",
	}, token)
	w := doRequest(router, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var portion models.ProductPortion
	config.DB.First(&portion, 1)
	assert.Equal(t, "Small", portion.Name)
}

func TestDeletePortionAboveFloor(t *testing.T) {
	router := setupTest(t)
	userA, token := createTestUser(t, "owner-a")
	product := seedPortionProduct(t, userA.ID, "Small", "Medium", "Large")

	w := doRequest(router, jsonRequest(t, "DELETE", "/user/productportion/1", nil, token))
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	config.DB.Model(&models.ProductPortion{}).Where("product_id = ?", product.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestDeletePortionFloorCascade(t *testing.T) {
	router := setupTest(t)
	userA, token := createTestUser(t, "owner-a")
	product := seedPortionProduct(t, userA.ID, "Small", "Large")

	// At the floor of two, deleting one portion removes them all.
	w := doRequest(router, jsonRequest(t, "DELETE", "/user/productportion/1", nil, token))
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	config.DB.Model(&models.ProductPortion{}).Where("product_id = ?", product.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeletePortionCrossOwnerIsNotFound(t *testing.T) {
	router := setupTest(t)
	userA, _ := createTestUser(t, "owner-a")
	_, tokenB := createTestUser(t, "owner-b")
	seedPortionProduct(t, userA.ID, "Small", "Medium", "Large")

	w := doRequest(router, jsonRequest(t, "DELETE", "/user/productportion/1", nil, tokenB))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
