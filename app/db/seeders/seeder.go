package seeders

import (
	"github.com/gomartghana/gomart-api/app/models"
	"gorm.io/gorm"
)

var defaultCategories = []models.Category{
	{CategoryName: "Electronics", Description: "Phones, laptops, accessories and home electronics"},
	{CategoryName: "Fashion", Description: "Clothing, footwear and traditional wear"},
	{CategoryName: "Home & Kitchen", Description: "Furniture, appliances and kitchenware"},
	{CategoryName: "Beauty & Health", Description: "Cosmetics, skincare and wellness products"},
	{CategoryName: "Groceries", Description: "Food, beverages and household essentials"},
	{CategoryName: "Sports & Outdoors", Description: "Fitness gear and outdoor equipment"},
}

// DBSeed inserts the default categories, skipping any whose name already
// exists so the command stays safe to re-run.
func DBSeed(db *gorm.DB) error {
	for _, category := range defaultCategories {
		var count int64
		if err := db.Model(&models.Category{}).
			Where("category_name = ?", category.CategoryName).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
