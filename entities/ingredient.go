package entities

type Ingredient struct {
	ID          uint   `gorm:"column:ingredient_id;primaryKey" json:"ingredient_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// RecipeIngredient links a recipe and an ingredient with recipe-specific
// quantity and unit. Composite key; rows go away with either parent.
type RecipeIngredient struct {
	RecipeID     uint    `gorm:"column:recipe_id;primaryKey" json:"recipe_id"`
	IngredientID uint    `gorm:"column:ingredient_id;primaryKey" json:"ingredient_id"`
	Quantity     float64 `gorm:"check:quantity >= 0" json:"quantity"`
	Unit         string  `json:"unit"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}
