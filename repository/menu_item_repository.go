package repository

import (
	"github.com/hray3182/ordering-app/entity"

	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// FindAll lists menu items oldest first, optionally scoped to one category.
func (r *MenuItemRepository) FindAll(categoryID *uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	q := r.DB.Order("created_at ASC, id ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category_id = ?", categoryID).Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuItemRepository) DeleteByCategory(tx *gorm.DB, categoryID uint) error {
	return tx.Where("category_id = ?", categoryID).Delete(&entity.MenuItem{}).Error
}
