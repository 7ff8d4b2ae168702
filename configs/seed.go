package configs

import (
	"github.com/hray3182/ordering-app/entity"
)

// SeedDemo inserts a small starter catalog so a fresh install has something
// to show. Runs only when the catalog is empty.
func SeedDemo() error {
	var cnt int64
	if err := db.Model(&entity.Category{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	mains := entity.Category{Name: "Mains", DisplayOrder: 1}
	drinks := entity.Category{Name: "Drinks", DisplayOrder: 2}
	if err := db.Create(&mains).Error; err != nil {
		return err
	}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{Name: "Burger", Description: "Beef patty, cheddar, pickles", Price: 5.50, CategoryID: mains.ID, Available: true},
		{Name: "Fries", Description: "Crispy, salted", Price: 2.00, CategoryID: mains.ID, Available: true},
		{Name: "Iced Tea", Price: 1.50, CategoryID: drinks.ID, Available: true},
	}
	return db.Create(&items).Error
}
