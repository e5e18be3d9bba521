package middleware

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/jwt"
	"Recipe-Share-Backend/pkg/recipe"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OwnsRecipeMiddleware(recipeService recipe.RecipeService) fiber.Handler
	}

	middleware struct {
		frontendURL string
	}
)

func NewMiddleware(frontendURL string) Middleware {
	return &middleware{frontendURL: frontendURL}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     m.frontendURL,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
	})
}

// AuthMiddleware reads the session token from the cookie, validates it
// and stores the subject on the request context.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		userID, role, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// OwnsRecipeMiddleware guards mutating recipe routes. A missing recipe
// reports NotFound before the ownership check can fail.
func (m *middleware) OwnsRecipeMiddleware(recipeService recipe.RecipeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		recipeID := c.Params("id")

		if err := recipeService.AuthorizeOwner(c.Context(), userID, recipeID); err != nil {
			if errors.Is(err, domain.ErrRecipeNotFound) {
				return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
			}
			if errors.Is(err, domain.ErrNotRecipeOwner) {
				return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedProcessRequest, err)
			}
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
		}

		return c.Next()
	}
}
