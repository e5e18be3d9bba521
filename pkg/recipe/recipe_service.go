package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils/storage"
	"Recipe-Share-Backend/pkg/category"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*entities.Recipe, error)
		GetRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error)
		GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetMyRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string) error

		AttachCategory(ctx context.Context, recipeID, categoryID string) error
		AttachCategories(ctx context.Context, recipeID string, categoryIDs []string) (*entities.Recipe, error)
		DetachCategory(ctx context.Context, recipeID, categoryID string) error
		DetachCategories(ctx context.Context, recipeID string, categoryIDs []string) (*entities.Recipe, error)

		AddStep(ctx context.Context, recipeID, description string) (*entities.Recipe, error)
		DeleteStep(ctx context.Context, recipeID, stepID string) (*entities.Recipe, error)
		ReplaceSteps(ctx context.Context, recipeID string, req domain.ReplaceStepsRequest) (*entities.Recipe, error)
		ReplaceIngredients(ctx context.Context, recipeID string, req domain.ReplaceIngredientsRequest) (*entities.Recipe, error)

		AuthorizeOwner(ctx context.Context, userID, recipeID string) error
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		s3                 storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, categoryRepository category.CategoryRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (*entities.Recipe, error) {
	if req.Poster == nil {
		return nil, domain.ErrPosterRequired
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipeID := uuid.New()

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("recipe-%s", recipeID.String()),
		req.Poster,
		"recipe-app/recipes",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	recipe := &entities.Recipe{
		ID:          recipeID,
		UserID:      userUUID,
		Title:       req.Title,
		Description: req.Description,
		PosterID:    objectKey,
		PosterURL:   s.s3.GetPublicLinkKey(objectKey),
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipes(ctx)
}

func (s *recipeService) GetMyRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipesByUser(ctx, userID)
}

// DeleteRecipe releases the poster image first, then removes the record
// and everything referencing it in one transaction. If the image delete
// fails nothing has been written yet; if the transaction fails the image
// is already gone, which the recipe survives.
func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.PosterID != "" {
		if err := s.s3.DeleteFile(recipe.PosterID); err != nil {
			return err
		}
	}

	return s.recipeRepository.DeleteRecipeCascade(ctx, recipe.ID)
}

func (s *recipeService) AttachCategory(ctx context.Context, recipeID, categoryID string) error {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	chosenCategory, err := s.categoryRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	linked, err := s.recipeRepository.IsCategoryLinked(ctx, recipe.ID, chosenCategory.ID)
	if err != nil {
		return err
	}
	if linked {
		return domain.ErrAlreadyAssociated
	}

	return s.recipeRepository.LinkCategory(ctx, recipe.ID, chosenCategory.ID)
}

// AttachCategories links each category in turn, skipping ids that are
// already associated. A missing category aborts the loop; links made
// before the failure stay in place.
func (s *recipeService) AttachCategories(ctx context.Context, recipeID string, categoryIDs []string) (*entities.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	for _, id := range categoryIDs {
		chosenCategory, err := s.categoryRepository.GetCategoryByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrCategoryNotFound
			}
			return nil, err
		}

		linked, err := s.recipeRepository.IsCategoryLinked(ctx, recipe.ID, chosenCategory.ID)
		if err != nil {
			return nil, err
		}
		if linked {
			continue
		}

		if err := s.recipeRepository.LinkCategory(ctx, recipe.ID, chosenCategory.ID); err != nil {
			return nil, err
		}
	}

	return s.GetRecipe(ctx, recipeID)
}

func (s *recipeService) DetachCategory(ctx context.Context, recipeID, categoryID string) error {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	chosenCategory, err := s.categoryRepository.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	// Removing an absent link is a no-op, not an error.
	return s.recipeRepository.UnlinkCategory(ctx, recipe.ID, chosenCategory.ID)
}

func (s *recipeService) DetachCategories(ctx context.Context, recipeID string, categoryIDs []string) (*entities.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		categoryUUID, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		ids = append(ids, categoryUUID)
	}

	if err := s.recipeRepository.UnlinkCategories(ctx, recipe.ID, ids); err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipeID)
}

func (s *recipeService) AddStep(ctx context.Context, recipeID, description string) (*entities.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	count, err := s.recipeRepository.CountSteps(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}

	step := &entities.RecipeStep{
		ID:          uuid.New(),
		RecipeID:    recipe.ID,
		StepNumber:  int(count) + 1,
		Description: description,
	}

	if err := s.recipeRepository.AddStep(ctx, step); err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipeID)
}

func (s *recipeService) DeleteStep(ctx context.Context, recipeID, stepID string) (*entities.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	stepUUID, err := uuid.Parse(stepID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	// Deleting an absent step id is a no-op.
	if err := s.recipeRepository.DeleteStep(ctx, recipe.ID, stepUUID); err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipeID)
}

// ReplaceSteps swaps the whole step list for the provided one. Step
// numbers are taken as given, no renumbering.
func (s *recipeService) ReplaceSteps(ctx context.Context, recipeID string, req domain.ReplaceStepsRequest) (*entities.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	steps := make([]entities.RecipeStep, 0, len(req.Steps))
	for _, in := range req.Steps {
		steps = append(steps, entities.RecipeStep{
			ID:          uuid.New(),
			RecipeID:    recipe.ID,
			StepNumber:  in.StepNumber,
			Description: in.Description,
		})
	}

	if err := s.recipeRepository.ReplaceSteps(ctx, recipe.ID, steps); err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipeID)
}

func (s *recipeService) ReplaceIngredients(ctx context.Context, recipeID string, req domain.ReplaceIngredientsRequest) (*entities.Recipe, error) {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	ingredients := make([]entities.RecipeIngredient, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		ingredients = append(ingredients, entities.RecipeIngredient{
			ID:       uuid.New(),
			RecipeID: recipe.ID,
			Name:     in.Name,
			Quantity: in.Quantity,
		})
	}

	if err := s.recipeRepository.ReplaceIngredients(ctx, recipe.ID, ingredients); err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipeID)
}

// AuthorizeOwner is the read-only ownership check run before any guarded
// mutation. Absence of the recipe wins over the ownership failure.
func (s *recipeService) AuthorizeOwner(ctx context.Context, userID, recipeID string) error {
	if _, err := s.GetRecipe(ctx, recipeID); err != nil {
		return err
	}

	owns, err := s.recipeRepository.IsRecipeOwnedByUser(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !owns {
		return domain.ErrNotRecipeOwner
	}

	return nil
}
