package domain

import (
	"errors"
)

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessGetIngredient    = "ingredient retrieved successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"

	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedGetIngredient    = "failed to retrieve ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	MessageSuccessAttachIngredient = "ingredient attached to recipe"
	MessageSuccessUpdateAttachment = "recipe ingredient updated successfully"
	MessageSuccessDetachIngredient = "ingredient detached from recipe"
	MessageSuccessListForRecipe    = "recipe ingredients retrieved successfully"

	MessageFailedAttachIngredient = "failed to attach ingredient to recipe"
	MessageFailedUpdateAttachment = "failed to update recipe ingredient"
	MessageFailedDetachIngredient = "failed to detach ingredient from recipe"
	MessageFailedListForRecipe    = "failed to retrieve recipe ingredients"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrAttachmentNotFound = errors.New("ingredient is not attached to this recipe")
)

type (
	CreateIngredientRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	UpdateIngredientRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	IngredientResponse struct {
		IngredientID uint   `json:"ingredient_id"`
		Name         string `json:"name"`
		Description  string `json:"description"`
	}

	AttachIngredientRequest struct {
		IngredientID uint    `json:"ingredient_id" validate:"required"`
		Quantity     float64 `json:"quantity" validate:"min=0"`
		Unit         string  `json:"unit" validate:"required"`
	}

	UpdateAttachmentRequest struct {
		Quantity float64 `json:"quantity" validate:"min=0"`
		Unit     string  `json:"unit" validate:"required"`
	}

	RecipeIngredientResponse struct {
		RecipeID     uint    `json:"recipe_id"`
		IngredientID uint    `json:"ingredient_id"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}

	// RecipeIngredientRow is the inner-join projection returned when listing
	// everything attached to a recipe.
	RecipeIngredientRow struct {
		IngredientID uint    `json:"ingredient_id"`
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}
)
