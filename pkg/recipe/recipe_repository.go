package recipe

import (
	"Recipe-Share-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		DeleteRecipeCascade(ctx context.Context, recipeID uuid.UUID) error
		IsRecipeOwnedByUser(ctx context.Context, userID, recipeID string) (bool, error)

		IsCategoryLinked(ctx context.Context, recipeID, categoryID uuid.UUID) (bool, error)
		LinkCategory(ctx context.Context, recipeID, categoryID uuid.UUID) error
		UnlinkCategory(ctx context.Context, recipeID, categoryID uuid.UUID) error
		UnlinkCategories(ctx context.Context, recipeID uuid.UUID, categoryIDs []uuid.UUID) error

		CountSteps(ctx context.Context, recipeID uuid.UUID) (int64, error)
		AddStep(ctx context.Context, step *entities.RecipeStep) error
		DeleteStep(ctx context.Context, recipeID, stepID uuid.UUID) error
		ReplaceSteps(ctx context.Context, recipeID uuid.UUID, steps []entities.RecipeStep) error
		ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []entities.RecipeIngredient) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Preload("Ingredients").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteRecipeCascade removes the recipe together with its category
// links, steps and ingredients in a single transaction, so a partial
// delete can never leave a dangling reference behind.
func (r *recipeRepository) DeleteRecipeCascade(ctx context.Context, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", recipeID).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) IsRecipeOwnedByUser(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) IsCategoryLinked(ctx context.Context, recipeID, categoryID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeCategory{}).
		Where("recipe_id = ? AND category_id = ?", recipeID, categoryID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) LinkCategory(ctx context.Context, recipeID, categoryID uuid.UUID) error {
	link := entities.RecipeCategory{
		RecipeID:   recipeID,
		CategoryID: categoryID,
	}
	return r.db.WithContext(ctx).Create(&link).Error
}

func (r *recipeRepository) UnlinkCategory(ctx context.Context, recipeID, categoryID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND category_id = ?", recipeID, categoryID).
		Delete(&entities.RecipeCategory{}).Error
}

func (r *recipeRepository) UnlinkCategories(ctx context.Context, recipeID uuid.UUID, categoryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND category_id IN ?", recipeID, categoryIDs).
		Delete(&entities.RecipeCategory{}).Error
}

func (r *recipeRepository) CountSteps(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeStep{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) AddStep(ctx context.Context, step *entities.RecipeStep) error {
	return r.db.WithContext(ctx).Create(step).Error
}

func (r *recipeRepository) DeleteStep(ctx context.Context, recipeID, stepID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND id = ?", recipeID, stepID).
		Delete(&entities.RecipeStep{}).Error
}

func (r *recipeRepository) ReplaceSteps(ctx context.Context, recipeID uuid.UUID, steps []entities.RecipeStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		if len(steps) == 0 {
			return nil
		}
		return tx.Create(&steps).Error
	})
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(ingredients) == 0 {
			return nil
		}
		return tx.Create(&ingredients).Error
	})
}
