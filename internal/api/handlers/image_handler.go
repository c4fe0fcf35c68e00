package handlers

import (
	"recipai-backend/domain"
	"recipai-backend/internal/api/presenters"
	"recipai-backend/pkg/image"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ImageHandler interface {
		ListForRecipe(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
		DeleteImage(c *fiber.Ctx) error
	}

	imageHandler struct {
		imageService image.ImageService
		validator    *validator.Validate
	}
)

func NewImageHandler(imageService image.ImageService, validator *validator.Validate) ImageHandler {
	return &imageHandler{
		imageService: imageService,
		validator:    validator,
	}
}

func (h *imageHandler) ListForRecipe(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetImages, err)
	}

	res, err := h.imageService.ListForRecipe(c.Context(), recipeID)
	if err != nil {
		return handleError(c, domain.MessageFailedGetImages, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetImages)
}

func (h *imageHandler) UploadImage(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	req := new(domain.UploadImageRequest)
	req.RecipeID = recipeID

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res, err := h.imageService.UploadImage(c.Context(), *req)
	if err != nil {
		return handleError(c, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}

func (h *imageHandler) DeleteImage(c *fiber.Ctx) error {
	imageID, err := paramID(c, "imageId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteImage, err)
	}

	if err := h.imageService.DeleteImage(c.Context(), imageID); err != nil {
		return handleError(c, domain.MessageFailedDeleteImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteImage)
}
