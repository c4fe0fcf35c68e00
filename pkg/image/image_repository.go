package image

import (
	"context"

	"recipai-backend/entities"

	"gorm.io/gorm"
)

type (
	ImageRepository interface {
		CreateImage(ctx context.Context, image *entities.UserImage) error
		GetImagesByRecipe(ctx context.Context, recipeID uint) ([]*entities.UserImage, error)
		GetImageByID(ctx context.Context, id uint) (*entities.UserImage, error)
		DeleteImage(ctx context.Context, id uint) error
	}

	imageRepository struct {
		db *gorm.DB
	}
)

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) CreateImage(ctx context.Context, image *entities.UserImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) GetImagesByRecipe(ctx context.Context, recipeID uint) ([]*entities.UserImage, error) {
	var images []*entities.UserImage
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("upload_time asc").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepository) GetImageByID(ctx context.Context, id uint) (*entities.UserImage, error) {
	var image entities.UserImage
	if err := r.db.WithContext(ctx).Where("image_id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) DeleteImage(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Where("image_id = ?", id).
		Delete(&entities.UserImage{}).Error
}
