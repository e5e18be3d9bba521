package category

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entities.Category
}

func (f *fakeCategoryRepository) CreateCategory(_ context.Context, category *entities.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepository) GetCategoryByID(_ context.Context, id string) (*entities.Category, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	c, ok := f.categories[categoryID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepository) GetCategoryByName(_ context.Context, name string) (*entities.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepository) GetCategories(_ context.Context) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes name to upper case", func(t *testing.T) {
		repo := &fakeCategoryRepository{categories: map[uuid.UUID]*entities.Category{}}
		service := NewCategoryService(repo)

		created, err := service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "soup"})
		require.NoError(t, err)
		assert.Equal(t, "SOUP", created.Name)
	})

	t.Run("case-insensitive collision conflicts", func(t *testing.T) {
		repo := &fakeCategoryRepository{categories: map[uuid.UUID]*entities.Category{}}
		service := NewCategoryService(repo)

		_, err := service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "SOUP"})
		require.NoError(t, err)

		_, err = service.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "soup"})
		assert.ErrorIs(t, err, domain.ErrCategoryExists)
		assert.Len(t, repo.categories, 1)
	})
}
