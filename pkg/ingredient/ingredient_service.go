package ingredient

import (
	"context"
	"errors"

	"recipai-backend/domain"
	"recipai-backend/entities"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id uint) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id uint, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id uint) error

		ListForRecipe(ctx context.Context, recipeID uint) ([]domain.RecipeIngredientRow, error)
		AttachIngredient(ctx context.Context, recipeID uint, req domain.AttachIngredientRequest) (domain.RecipeIngredientResponse, error)
		UpdateAttachment(ctx context.Context, recipeID, ingredientID uint, req domain.UpdateAttachmentRequest) (domain.RecipeIngredientResponse, error)
		DetachIngredient(ctx context.Context, recipeID, ingredientID uint) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, domain.TranslateStorageError(err)
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, domain.TranslateStorageError(err)
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, toIngredientResponse(ingredient))
	}
	return response, nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id uint) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, domain.TranslateStorageError(err)
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id uint, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, domain.TranslateStorageError(err)
	}

	ingredient.Name = req.Name
	ingredient.Description = req.Description

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, domain.TranslateStorageError(err)
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id uint) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return domain.TranslateStorageError(err)
	}

	if err := s.ingredientRepository.DeleteIngredient(ctx, id); err != nil {
		return domain.TranslateStorageError(err)
	}
	return nil
}

func (s *ingredientService) ListForRecipe(ctx context.Context, recipeID uint) ([]domain.RecipeIngredientRow, error) {
	rows, err := s.ingredientRepository.ListForRecipe(ctx, recipeID)
	if err != nil {
		return nil, domain.TranslateStorageError(err)
	}
	// A recipe with nothing attached is an empty list, not an error.
	return rows, nil
}

func (s *ingredientService) AttachIngredient(ctx context.Context, recipeID uint, req domain.AttachIngredientRequest) (domain.RecipeIngredientResponse, error) {
	attachment := &entities.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: req.IngredientID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
	}

	if err := s.ingredientRepository.AttachIngredient(ctx, attachment); err != nil {
		return domain.RecipeIngredientResponse{}, domain.TranslateStorageError(err)
	}
	return toAttachmentResponse(attachment), nil
}

func (s *ingredientService) UpdateAttachment(ctx context.Context, recipeID, ingredientID uint, req domain.UpdateAttachmentRequest) (domain.RecipeIngredientResponse, error) {
	attachment, err := s.ingredientRepository.GetAttachment(ctx, recipeID, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeIngredientResponse{}, domain.ErrAttachmentNotFound
		}
		return domain.RecipeIngredientResponse{}, domain.TranslateStorageError(err)
	}

	attachment.Quantity = req.Quantity
	attachment.Unit = req.Unit

	if err := s.ingredientRepository.UpdateAttachment(ctx, attachment); err != nil {
		return domain.RecipeIngredientResponse{}, domain.TranslateStorageError(err)
	}
	return toAttachmentResponse(attachment), nil
}

func (s *ingredientService) DetachIngredient(ctx context.Context, recipeID, ingredientID uint) error {
	affected, err := s.ingredientRepository.DetachIngredient(ctx, recipeID, ingredientID)
	if err != nil {
		return domain.TranslateStorageError(err)
	}
	if affected == 0 {
		return domain.ErrAttachmentNotFound
	}
	return nil
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		IngredientID: ingredient.ID,
		Name:         ingredient.Name,
		Description:  ingredient.Description,
	}
}

func toAttachmentResponse(attachment *entities.RecipeIngredient) domain.RecipeIngredientResponse {
	return domain.RecipeIngredientResponse{
		RecipeID:     attachment.RecipeID,
		IngredientID: attachment.IngredientID,
		Quantity:     attachment.Quantity,
		Unit:         attachment.Unit,
	}
}
