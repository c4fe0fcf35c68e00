package config

import (
	"os"
	"time"

	"recipai-backend/internal/api/handlers"
	"recipai-backend/internal/api/routes"
	"recipai-backend/internal/middleware"
	"recipai-backend/internal/utils"
	"recipai-backend/internal/utils/storage"
	"recipai-backend/pkg/image"
	"recipai-backend/pkg/ingredient"
	"recipai-backend/pkg/recipe"
	"recipai-backend/pkg/recognition"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// access log and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	imageRepository := image.NewImageRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	imageService := image.NewImageService(imageRepository, recipeRepository, s3)
	recognitionService := recognition.NewRecognitionService(
		utils.GetConfig("RECOGNITION_API_URL"),
		utils.GetConfig("RECOGNITION_API_KEY"),
	)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, recognitionService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	imageHandler := handlers.NewImageHandler(imageService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		ImageHandler:      imageHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
