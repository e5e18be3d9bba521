package category

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (*entities.Category, error) {
	// Names are case-normalized so "soup" and "SOUP" collide.
	name := strings.ToUpper(req.Name)

	existing, err := s.categoryRepository.GetCategoryByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCategoryExists
	}

	category := &entities.Category{
		ID:   uuid.New(),
		Name: name,
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.categoryRepository.GetCategories(ctx)
}
