package stats

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	StatsRepository interface {
		CountUsers(ctx context.Context) (int64, error)
		CountRecipes(ctx context.Context) (int64, error)
		CountCategories(ctx context.Context) (int64, error)
		GetMostPopularCategory(ctx context.Context) (*domain.PopularCategory, error)
	}

	statsRepository struct {
		db *gorm.DB
	}
)

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Category{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) GetMostPopularCategory(ctx context.Context) (*domain.PopularCategory, error) {
	var results []domain.PopularCategory
	if err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.name, count(recipe_categories.recipe_id) as recipe_count").
		Joins("LEFT JOIN recipe_categories ON recipe_categories.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("recipe_count desc").
		Limit(1).
		Scan(&results).Error; err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
