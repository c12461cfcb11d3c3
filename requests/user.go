package requests

import "mime/multipart"

type RegisterUserRequest struct {
	Name     string                `form:"name" binding:"required"`
	Username string                `form:"username" binding:"required"`
	Email    string                `form:"email" binding:"required,email"`
	Password string                `form:"password" binding:"required,min=6"`
	Image    *multipart.FileHeader `form:"image"`
}

type UpdateUserRequest struct {
	Name     string                `form:"name"`
	Username string                `form:"username"`
	Email    string                `form:"email"`
	Image    *multipart.FileHeader `form:"image"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
