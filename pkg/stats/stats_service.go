package stats

import (
	"Recipe-Share-Backend/domain"
	"context"
)

type (
	StatsService interface {
		GetStats(ctx context.Context) (domain.StatsResponse, error)
	}

	statsService struct {
		statsRepository StatsRepository
	}
)

func NewStatsService(statsRepository StatsRepository) StatsService {
	return &statsService{statsRepository: statsRepository}
}

func (s *statsService) GetStats(ctx context.Context) (domain.StatsResponse, error) {
	usersCount, err := s.statsRepository.CountUsers(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	recipesCount, err := s.statsRepository.CountRecipes(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	categoriesCount, err := s.statsRepository.CountCategories(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	popular, err := s.statsRepository.GetMostPopularCategory(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	return domain.StatsResponse{
		UsersCount:      usersCount,
		RecipesCount:    recipesCount,
		CategoriesCount: categoriesCount,
		PopularCategory: popular,
	}, nil
}
