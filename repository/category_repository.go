package repository

import (
	"github.com/hray3182/ordering-app/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("display_order ASC, id ASC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CategoryRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Category{}, id).Error
}
