package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessUploadImage = "image uploaded successfully"
	MessageSuccessGetImages   = "images retrieved successfully"
	MessageSuccessDeleteImage = "image deleted successfully"

	MessageFailedUploadImage = "failed to upload image"
	MessageFailedGetImages   = "failed to retrieve images"
	MessageFailedDeleteImage = "failed to delete image"

	ErrImageNotFound      = errors.New("image not found")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	UploadImageRequest struct {
		RecipeID uint                  `json:"-"`
		Image    *multipart.FileHeader `json:"-" form:"image" validate:"required"`
	}

	ImageResponse struct {
		ImageID    uint      `json:"image_id"`
		RecipeID   uint      `json:"recipe_id"`
		ImageURL   string    `json:"image_url"`
		UploadTime time.Time `json:"upload_time"`
	}
)
