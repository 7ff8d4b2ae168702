package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	// name and price are snapshots taken at checkout; catalog edits or
	// deletions never touch them
	MenuItemName string  `gorm:"size:200;not null" json:"menuItemName"`
	Quantity     int     `gorm:"not null" json:"quantity"`
	Price        float64 `gorm:"not null" json:"price"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	// soft reference; nil or dangling once the menu item is gone
	MenuItemID *uint `json:"menuItemId"`
}
