package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetRecipes         = "success get recipes"
	MessageSuccessGetRecipeDetail    = "success get recipe detail"
	MessageSuccessCreateRecipe       = "recipe created successfully"
	MessageSuccessDeleteRecipe       = "recipe deleted successfully"
	MessageSuccessAddStep            = "step added successfully"
	MessageSuccessDeleteStep         = "step deleted successfully"
	MessageSuccessReplaceSteps       = "steps saved successfully"
	MessageSuccessReplaceIngredients = "ingredients saved successfully"
	MessageSuccessAttachCategory     = "category added"
	MessageSuccessDetachCategory     = "category removed successfully"

	MessageFailedGetRecipes         = "failed to get recipes"
	MessageFailedGetRecipeDetail    = "failed to get recipe detail"
	MessageFailedCreateRecipe       = "failed to create recipe"
	MessageFailedDeleteRecipe       = "failed to delete recipe"
	MessageFailedAddStep            = "failed to add step"
	MessageFailedDeleteStep         = "failed to delete step"
	MessageFailedReplaceSteps       = "failed to save steps"
	MessageFailedReplaceIngredients = "failed to save ingredients"
	MessageFailedAttachCategory     = "failed to add category"
	MessageFailedDetachCategory     = "failed to remove category"

	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrNotRecipeOwner    = errors.New("you don't own the recipe")
	ErrPosterRequired    = errors.New("poster image is required")
	ErrAlreadyAssociated = errors.New("category already associated")
)

type (
	CreateRecipeRequest struct {
		Title       string                `json:"title" form:"title" validate:"required"`
		Description string                `json:"description" form:"description" validate:"required"`
		Poster      *multipart.FileHeader `json:"-" form:"-"`
	}

	AddStepRequest struct {
		Description string `json:"description" validate:"required"`
	}

	StepInput struct {
		StepNumber  int    `json:"step" validate:"required"`
		Description string `json:"description" validate:"required"`
	}

	ReplaceStepsRequest struct {
		Steps []StepInput `json:"steps" validate:"required,min=1,dive"`
	}

	IngredientInput struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"required"`
	}

	ReplaceIngredientsRequest struct {
		Ingredients []IngredientInput `json:"ingredients" validate:"required,min=1,dive"`
	}

	AttachCategoryRequest struct {
		Category string `json:"category" validate:"required,uuid"`
	}

	AttachCategoriesRequest struct {
		Categories []string `json:"categories" validate:"required,min=1,dive,uuid"`
	}
)
