package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessGetRecipe    = "recipe retrieved successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedGetRecipe    = "failed to retrieve recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	// CreateRecipeRequest carries the quick-add form. ImagePath is optional
	// because the client only has a URL once the media upload finished.
	CreateRecipeRequest struct {
		Title        string `json:"title" validate:"required"`
		ImagePath    string `json:"image_path" validate:"omitempty,url"`
		CookingTime  string `json:"cooking_time" validate:"required"`
		Ingredients  string `json:"ingredients" validate:"required"`
		Instructions string `json:"instructions" validate:"required"`
	}

	// UpdateRecipeRequest overwrites every mutable field of the row.
	UpdateRecipeRequest struct {
		Title        string `json:"title" validate:"required"`
		ImagePath    string `json:"image_path" validate:"omitempty,url"`
		CookingTime  string `json:"cooking_time" validate:"required"`
		Ingredients  string `json:"ingredients" validate:"required"`
		Instructions string `json:"instructions" validate:"required"`
	}

	RecipeResponse struct {
		RecipeID     uint      `json:"recipe_id"`
		Title        string    `json:"title"`
		ImagePath    string    `json:"image_path,omitempty"`
		CookingTime  string    `json:"cooking_time"`
		Ingredients  string    `json:"ingredients"`
		Instructions string    `json:"instructions"`
		CreationDate time.Time `json:"creation_date"`
	}
)
