package ingredient

import (
	"context"

	"recipai-backend/domain"
	"recipai-backend/entities"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, id uint) error

		ListForRecipe(ctx context.Context, recipeID uint) ([]domain.RecipeIngredientRow, error)
		AttachIngredient(ctx context.Context, attachment *entities.RecipeIngredient) error
		GetAttachment(ctx context.Context, recipeID, ingredientID uint) (*entities.RecipeIngredient, error)
		UpdateAttachment(ctx context.Context, attachment *entities.RecipeIngredient) error
		DetachIngredient(ctx context.Context, recipeID, ingredientID uint) (int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id uint) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("ingredient_id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Where("ingredient_id = ?", id).
		Delete(&entities.Ingredient{}).Error
}

func (r *ingredientRepository) ListForRecipe(ctx context.Context, recipeID uint) ([]domain.RecipeIngredientRow, error) {
	rows := make([]domain.RecipeIngredientRow, 0)
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("ingredients.ingredient_id, ingredients.name, ingredients.description, recipe_ingredients.quantity, recipe_ingredients.unit").
		Joins("JOIN ingredients ON ingredients.ingredient_id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id = ?", recipeID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ingredientRepository) AttachIngredient(ctx context.Context, attachment *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

func (r *ingredientRepository) GetAttachment(ctx context.Context, recipeID, ingredientID uint) (*entities.RecipeIngredient, error) {
	var attachment entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		First(&attachment).Error; err != nil {
		return nil, err
	}
	return &attachment, nil
}

func (r *ingredientRepository) UpdateAttachment(ctx context.Context, attachment *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ?", attachment.RecipeID, attachment.IngredientID).
		Updates(map[string]interface{}{
			"quantity": attachment.Quantity,
			"unit":     attachment.Unit,
		}).Error
}

func (r *ingredientRepository) DetachIngredient(ctx context.Context, recipeID, ingredientID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&entities.RecipeIngredient{})
	return result.RowsAffected, result.Error
}
