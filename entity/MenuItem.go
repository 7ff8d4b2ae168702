package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImagePath   string  `json:"imagePath"`

	// gates customer visibility only; staff tooling may still reference
	// an unavailable item in new orders
	Available bool `gorm:"not null;default:true" json:"available"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`
}
