package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
// Transitions between statuses are unrestricted so staff can correct
// mistakes in either direction.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	// public sequential number, distinct from the primary key; the unique
	// index is what makes concurrent checkouts safe
	OrderNumber string  `gorm:"size:20;uniqueIndex;not null" json:"orderNumber"`
	Status      string  `gorm:"size:20;not null;default:pending" json:"status"`
	Total       float64 `gorm:"not null" json:"total"`
	Paid        bool    `gorm:"not null;default:false" json:"paid"`

	// preload only on detail endpoints
	OrderItems []OrderItem `json:"-"`
}
