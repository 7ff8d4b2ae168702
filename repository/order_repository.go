package repository

import (
	"github.com/hray3182/ordering-app/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// LatestOrderNumber returns the number of the most recently created order,
// or "" when no orders exist. Numbers are assigned monotonically, so the
// newest row also carries the highest number.
func (r *OrderRepository) LatestOrderNumber(tx *gorm.DB) (string, error) {
	var rows []string
	err := tx.Model(&entity.Order{}).
		Select("order_number").
		Order("id DESC").Limit(1).
		Pluck("order_number", &rows).Error
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0], nil
}

func (r *OrderRepository) List() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByNumber(number string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("order_number = ?", number).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Updates(fields).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) FindItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}
