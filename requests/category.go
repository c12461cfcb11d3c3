package requests

import "mime/multipart"

type CreateCategoryRequest struct {
	Name        string                `form:"name" binding:"required"`
	Description string                `form:"description"`
	Image       *multipart.FileHeader `form:"image"`
}

type UpdateCategoryRequest struct {
	Name        string                `form:"name"`
	Description *string               `form:"description"`
	Image       *multipart.FileHeader `form:"image"`
}
