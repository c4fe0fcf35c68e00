package entities

import (
	"time"
)

// Recipe is the quick-add shape used by the mobile client: the whole recipe
// arrives as text blocks, with ingredients newline-separated. The normalized
// many-to-many attachments live in RecipeIngredient.
type Recipe struct {
	ID           uint      `gorm:"column:recipe_id;primaryKey" json:"recipe_id"`
	Title        string    `gorm:"not null" json:"title"`
	ImagePath    string    `gorm:"column:image_path" json:"image_path,omitempty"`
	CookingTime  string    `gorm:"column:cooking_time" json:"cooking_time"`
	Ingredients  string    `gorm:"type:text" json:"ingredients"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	CreationDate time.Time `gorm:"column:creation_date;autoCreateTime" json:"creation_date"`

	Images []*UserImage `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}
