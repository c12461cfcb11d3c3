package models

import (
	"time"
)

type ProductPortion struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"column:name;size:255;not null" json:"name"`
	Price int64  `gorm:"column:price;not null" json:"price"`

	StockAvailable bool `gorm:"column:stock_available;not null;default:true" json:"stock_available"`

	ProductID uint `gorm:"column:product_id;not null;index" json:"product_id"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}
