package image

import (
	"context"
	"errors"
	"fmt"

	"recipai-backend/domain"
	"recipai-backend/entities"
	"recipai-backend/internal/utils/storage"
	"recipai-backend/pkg/recipe"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type (
	ImageService interface {
		ListForRecipe(ctx context.Context, recipeID uint) ([]domain.ImageResponse, error)
		UploadImage(ctx context.Context, req domain.UploadImageRequest) (domain.ImageResponse, error)
		DeleteImage(ctx context.Context, id uint) error
	}

	imageService struct {
		imageRepository  ImageRepository
		recipeRepository recipe.RecipeRepository
		s3               storage.AwsS3
	}
)

func NewImageService(imageRepository ImageRepository, recipeRepository recipe.RecipeRepository, s3 storage.AwsS3) ImageService {
	return &imageService{
		imageRepository:  imageRepository,
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *imageService) ListForRecipe(ctx context.Context, recipeID uint) ([]domain.ImageResponse, error) {
	images, err := s.imageRepository.GetImagesByRecipe(ctx, recipeID)
	if err != nil {
		return nil, domain.TranslateStorageError(err)
	}

	response := make([]domain.ImageResponse, 0, len(images))
	for _, image := range images {
		response = append(response, toImageResponse(image))
	}
	return response, nil
}

func (s *imageService) UploadImage(ctx context.Context, req domain.UploadImageRequest) (domain.ImageResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImageResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ImageResponse{}, domain.TranslateStorageError(err)
	}

	fileName := fmt.Sprintf("recipe-%d-%s", req.RecipeID, uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "recipe-images", storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return domain.ImageResponse{}, domain.ErrInvalidImageFormat
		}
		return domain.ImageResponse{}, err
	}

	image := &entities.UserImage{
		RecipeID: req.RecipeID,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
	}

	// The blob write and the row insert are not one transaction; undo the
	// blob if the insert fails so no orphan files accumulate.
	if err := s.imageRepository.CreateImage(ctx, image); err != nil {
		if delErr := s.s3.DeleteFile(objectKey); delErr != nil {
			log.Error().Err(delErr).Str("object_key", objectKey).Msg("failed to remove blob after insert failure")
		}
		return domain.ImageResponse{}, domain.TranslateStorageError(err)
	}

	return toImageResponse(image), nil
}

func (s *imageService) DeleteImage(ctx context.Context, id uint) error {
	image, err := s.imageRepository.GetImageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrImageNotFound
		}
		return domain.TranslateStorageError(err)
	}

	if err := s.imageRepository.DeleteImage(ctx, id); err != nil {
		return domain.TranslateStorageError(err)
	}

	// Row removal wins; a failed blob delete is logged, not surfaced.
	if objectKey := s.s3.GetObjectKeyFromLink(image.ImageURL); objectKey != "" {
		if err := s.s3.DeleteFile(objectKey); err != nil {
			log.Error().Err(err).Str("object_key", objectKey).Msg("failed to delete image blob")
		}
	}
	return nil
}

func toImageResponse(image *entities.UserImage) domain.ImageResponse {
	return domain.ImageResponse{
		ImageID:    image.ID,
		RecipeID:   image.RecipeID,
		ImageURL:   image.ImageURL,
		UploadTime: image.UploadTime,
	}
}
