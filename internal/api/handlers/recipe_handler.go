package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/recipe"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetAllRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		GetMyRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		AddStep(c *fiber.Ctx) error
		DeleteStep(c *fiber.Ctx) error
		ReplaceSteps(c *fiber.Ctx) error
		ReplaceIngredients(c *fiber.Ctx) error
		AttachCategory(c *fiber.Ctx) error
		AttachCategories(c *fiber.Ctx) error
		DetachCategory(c *fiber.Ctx) error
		DetachCategories(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

// recipeErrStatus maps relationship-manager errors to HTTP statuses.
func recipeErrStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound), errors.Is(err, domain.ErrCategoryNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyAssociated):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNotRecipeOwner):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetAllRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipe(c.Context(), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetMyRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipes, err := h.recipeService.GetMyRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, recipes, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("poster"); err == nil {
		req.Poster = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID); err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) AddStep(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.AddStepRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddStep, err)
	}

	res, err := h.recipeService.AddStep(c.Context(), recipeID, req.Description)
	if err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedAddStep, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddStep)
}

func (h *recipeHandler) DeleteStep(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	stepID := c.Params("stepId")

	res, err := h.recipeService.DeleteStep(c.Context(), recipeID, stepID)
	if err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedDeleteStep, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteStep)
}

func (h *recipeHandler) ReplaceSteps(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.ReplaceStepsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceSteps, err)
	}

	res, err := h.recipeService.ReplaceSteps(c.Context(), recipeID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedReplaceSteps, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReplaceSteps)
}

func (h *recipeHandler) ReplaceIngredients(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.ReplaceIngredientsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplaceIngredients, err)
	}

	res, err := h.recipeService.ReplaceIngredients(c.Context(), recipeID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedReplaceIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReplaceIngredients)
}

func (h *recipeHandler) AttachCategory(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.AttachCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAttachCategory, err)
	}

	if err := h.recipeService.AttachCategory(c.Context(), recipeID, req.Category); err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedAttachCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAttachCategory)
}

func (h *recipeHandler) AttachCategories(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.AttachCategoriesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAttachCategory, err)
	}

	res, err := h.recipeService.AttachCategories(c.Context(), recipeID, req.Categories)
	if err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedAttachCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAttachCategory)
}

func (h *recipeHandler) DetachCategory(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.AttachCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetachCategory, err)
	}

	if err := h.recipeService.DetachCategory(c.Context(), recipeID, req.Category); err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedDetachCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDetachCategory)
}

func (h *recipeHandler) DetachCategories(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.AttachCategoriesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetachCategory, err)
	}

	res, err := h.recipeService.DetachCategories(c.Context(), recipeID, req.Categories)
	if err != nil {
		return presenters.ErrorResponse(c, recipeErrStatus(err), domain.MessageFailedDetachCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDetachCategory)
}
