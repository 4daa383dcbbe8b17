package routes

import (
	"Recipe-Catalog-Backend/internal/api/handlers"
	"Recipe-Catalog-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	// recipe routes; the roster paths must be registered before /:id
	{
		recipes.Get("/roster/list", c.RecipeHandler.GetRoster)
		recipes.Get("/roster/grocery-list", c.RecipeHandler.GetGroceryList)
		recipes.Get("/", c.RecipeHandler.GetRecipes)
		recipes.Post("/", c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:id/toggle-roster", c.RecipeHandler.ToggleRoster)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Recipe API is running...")
	})
}
