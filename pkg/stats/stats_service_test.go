package stats

import (
	"Recipe-Share-Backend/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepository struct {
	users      int64
	recipes    int64
	categories int64
	popular    *domain.PopularCategory
}

func (f *fakeStatsRepository) CountUsers(context.Context) (int64, error)      { return f.users, nil }
func (f *fakeStatsRepository) CountRecipes(context.Context) (int64, error)    { return f.recipes, nil }
func (f *fakeStatsRepository) CountCategories(context.Context) (int64, error) { return f.categories, nil }
func (f *fakeStatsRepository) GetMostPopularCategory(context.Context) (*domain.PopularCategory, error) {
	return f.popular, nil
}

func TestGetStats(t *testing.T) {
	service := NewStatsService(&fakeStatsRepository{
		users:      3,
		recipes:    7,
		categories: 2,
		popular:    &domain.PopularCategory{Name: "SOUP", RecipeCount: 5},
	})

	res, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.UsersCount)
	assert.Equal(t, int64(7), res.RecipesCount)
	assert.Equal(t, int64(2), res.CategoriesCount)
	require.NotNil(t, res.PopularCategory)
	assert.Equal(t, "SOUP", res.PopularCategory.Name)
}

func TestGetStatsNoCategories(t *testing.T) {
	service := NewStatsService(&fakeStatsRepository{})

	res, err := service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Nil(t, res.PopularCategory)
}
