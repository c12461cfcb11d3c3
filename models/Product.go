package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:name;size:255;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`

	Price int64 `gorm:"column:price;not null" json:"price"`

	Image         string `gorm:"column:image;size:255" json:"image"`
	ImagePublicID string `gorm:"column:image_public_id;size:255" json:"-"`

	StockAvailable bool `gorm:"column:stock_available;not null;default:true" json:"stock_available"`

	// Portion marks a product that is sold in priced variants; the
	// variants live in product_portions.
	Portion bool `gorm:"column:portion;not null;default:false" json:"portion"`

	CategoryID      uint     `gorm:"column:category_id;not null;index" json:"category_id"`
	Category        Category `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedByUserID uint     `gorm:"column:created_by_user_id;not null;index" json:"created_by_user_id"`

	Portions []ProductPortion `gorm:"foreignKey:ProductID" json:"portions"`

	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}
