package requests

import "mime/multipart"

type CreateAdvertisementRequest struct {
	Name     string                `form:"name"`
	Position int                   `form:"position"`
	Image    *multipart.FileHeader `form:"image" binding:"required"`
}

type UpdateAdvertisementRequest struct {
	Name     string                `form:"name"`
	Position *int                  `form:"position"`
	Image    *multipart.FileHeader `form:"image"`
}
