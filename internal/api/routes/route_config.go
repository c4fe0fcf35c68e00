package routes

import (
	"recipai-backend/internal/api/handlers"
	"recipai-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	ImageHandler      handlers.ImageHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.Ingredients()
	c.Images()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/recipes")
	{
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Get("", c.RecipeHandler.GetRecipes)
		// registered before /:id so "recognize" is not parsed as an id
		recipes.Post("/recognize", c.RecipeHandler.RecognizeImage)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

		recipes.Get("/:recipeId/ingredients", c.IngredientHandler.ListForRecipe)
		recipes.Post("/:recipeId/ingredients", c.IngredientHandler.AttachIngredient)
		recipes.Put("/:recipeId/ingredients/:ingredientId", c.IngredientHandler.UpdateAttachment)
		recipes.Delete("/:recipeId/ingredients/:ingredientId", c.IngredientHandler.DetachIngredient)

		recipes.Get("/:recipeId/images", c.ImageHandler.ListForRecipe)
		recipes.Post("/:recipeId/images", c.ImageHandler.UploadImage)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/ingredients")
	{
		ingredients.Post("", c.IngredientHandler.CreateIngredient)
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredient)
		ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Images() {
	c.App.Delete("/images/:imageId", c.ImageHandler.DeleteImage)
}

func (c *Config) GuestRoute() {
	c.App.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
