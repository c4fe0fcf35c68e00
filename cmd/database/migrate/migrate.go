package migration

import (
	"recipai-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		return err
	}
	if err := db.AutoMigrate(&entities.UserImage{}); err != nil {
		return err
	}
	return nil
}
