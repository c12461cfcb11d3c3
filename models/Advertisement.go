package models

import (
	"time"

	"gorm.io/gorm"
)

type Advertisement struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"column:name;size:255;not null;default:'advertisement'" json:"name"`

	Image         string `gorm:"column:image;size:255" json:"image"`
	ImagePublicID string `gorm:"column:image_public_id;size:255" json:"-"`

	// Position controls display order on the menu card.
	Position int `gorm:"column:position;not null;default:0;index" json:"position"`

	CreatedByUserID uint `gorm:"column:created_by_user_id;not null;index" json:"created_by_user_id"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}
