package requests

import "mime/multipart"

type CreateProductRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Price       int64  `form:"price"`
	CategoryID  uint   `form:"category_id" binding:"required"`

	StockAvailable *bool `form:"stock_available"`
	Portion        bool  `form:"portion"`

	// Portions is a JSON-encoded array of portion inputs, sent as a
	// plain form field alongside the binary image.
	Portions string `form:"portions"`

	Image *multipart.FileHeader `form:"image"`
}

type UpdateProductRequest struct {
	Name        string  `form:"name"`
	Description *string `form:"description"`
	Price       *int64  `form:"price"`
	CategoryID  uint    `form:"category_id"`

	StockAvailable *bool `form:"stock_available"`
	Portion        *bool `form:"portion"`

	Portions string `form:"portions"`

	Image *multipart.FileHeader `form:"image"`
}

// PortionInput is one element of the JSON-encoded portions field.
type PortionInput struct {
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	StockAvailable bool   `json:"stock_available"`
}

type CreatePortionRequest struct {
	Name           string `form:"name" binding:"required"`
	Price          int64  `form:"price"`
	StockAvailable bool   `form:"stock_available"`
	ProductID      uint   `form:"product_id" binding:"required"`
}

type UpdatePortionRequest struct {
	Name           string `form:"name"`
	Price          *int64 `form:"price"`
	StockAvailable *bool  `form:"stock_available"`
}
