package routes

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/pkg/jwt"
	"Recipe-Share-Backend/pkg/recipe"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	CategoryHandler handlers.CategoryHandler
	StatsHandler    handlers.StatsHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
	RecipeService   recipe.RecipeService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipe()
	c.Category()
	c.Stats()
	c.GuestRoute()
}

func (c *Config) User() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	user := c.App.Group("/api/v1")
	{
		user.Get("/users", c.UserHandler.GetUsers)
		user.Post("/users", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/logout", c.UserHandler.Logout)
		user.Get("/me", auth, c.UserHandler.Me)
		user.Put("/updateprofile", auth, c.UserHandler.UpdateProfile)
		user.Put("/changepassword", auth, c.UserHandler.ChangePassword)
		user.Post("/forgotpassword", c.UserHandler.ForgotPassword)
		user.Post("/resetpassword/:token", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Recipe() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	owns := c.Middleware.OwnsRecipeMiddleware(c.RecipeService)

	api := c.App.Group("/api/v1")
	{
		api.Get("/recipes", c.RecipeHandler.GetAllRecipes)
		api.Get("/recipes/:id", c.RecipeHandler.GetRecipe)
		api.Get("/myrecipes", auth, c.RecipeHandler.GetMyRecipes)
		api.Post("/createrecipe", auth, c.RecipeHandler.CreateRecipe)
		api.Delete("/deleterecipe/:id", auth, owns, c.RecipeHandler.DeleteRecipe)

		api.Put("/recipe/:id/addstep", auth, owns, c.RecipeHandler.AddStep)
		api.Put("/recipe/:id/addsteps", auth, owns, c.RecipeHandler.ReplaceSteps)
		api.Delete("/recipe/:id/deletestep/:stepId", auth, owns, c.RecipeHandler.DeleteStep)
		api.Put("/recipe/:id/addingredients", auth, owns, c.RecipeHandler.ReplaceIngredients)

		api.Put("/recipe/:id/addcategory", auth, owns, c.RecipeHandler.AttachCategory)
		api.Put("/recipe/:id/addcategories", auth, owns, c.RecipeHandler.AttachCategories)
		api.Put("/recipe/:id/removecategory", auth, owns, c.RecipeHandler.DetachCategory)
		api.Put("/recipe/:id/removecategories", auth, owns, c.RecipeHandler.DetachCategories)
	}
}

func (c *Config) Category() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	api := c.App.Group("/api/v1")
	{
		api.Post("/createcategory", auth, c.CategoryHandler.CreateCategory)
		api.Get("/allcategories", c.CategoryHandler.GetCategories)
	}
}

func (c *Config) Stats() {
	c.App.Get("/api/v1/stats", c.StatsHandler.GetStats)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
