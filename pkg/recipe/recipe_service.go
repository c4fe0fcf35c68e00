package recipe

import (
	"context"
	"errors"

	"recipai-backend/domain"
	"recipai-backend/entities"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id uint) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id uint) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	recipe := &entities.Recipe{
		Title:        req.Title,
		ImagePath:    req.ImagePath,
		CookingTime:  req.CookingTime,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, domain.TranslateStorageError(err)
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, domain.TranslateStorageError(err)
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, toRecipeResponse(recipe))
	}
	return response, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, domain.TranslateStorageError(err)
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, domain.TranslateStorageError(err)
	}

	// creation_date stays as inserted; everything else is overwritten.
	recipe.Title = req.Title
	recipe.ImagePath = req.ImagePath
	recipe.CookingTime = req.CookingTime
	recipe.Ingredients = req.Ingredients
	recipe.Instructions = req.Instructions

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, domain.TranslateStorageError(err)
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return domain.TranslateStorageError(err)
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		return domain.TranslateStorageError(err)
	}
	return nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		RecipeID:     recipe.ID,
		Title:        recipe.Title,
		ImagePath:    recipe.ImagePath,
		CookingTime:  recipe.CookingTime,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		CreationDate: recipe.CreationDate,
	}
}
