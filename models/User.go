package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UUID is the public identifier used by the menu card surface,
	// the numeric ID never leaves the owner API.
	UUID string `gorm:"column:uuid;size:36;uniqueIndex;not null" json:"uuid"`

	Name     string `gorm:"column:name;size:255;not null" json:"name"`
	Username string `gorm:"column:username;size:255;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`

	HashedPassword string `gorm:"column:hashed_password;size:255;not null" json:"-"`

	ImageURL      string `gorm:"column:image_url;size:255" json:"image_url"`
	ImagePublicID string `gorm:"column:image_public_id;size:255" json:"-"`

	IsSuperuser bool `gorm:"column:is_superuser;default:false" json:"is_superuser"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}
