package models

import (
	"time"
)

// Leads is a franchise sales enquiry. It has no owner and is not part
// of any menu card.
type Leads struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"column:name;size:255;not null" json:"name"`
	Contact string `gorm:"column:contact;size:255;not null" json:"contact"`
	Place   string `gorm:"column:place;size:255;not null" json:"place"`

	Price     int64 `gorm:"column:price;not null" json:"price"`
	Franchise int64 `gorm:"column:franchise;not null" json:"franchise"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}
