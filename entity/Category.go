package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name         string `gorm:"size:100;not null" json:"name"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`

	// deleting a category cascades in application logic, not via FK
	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
