package domain

var (
	MessageSuccessGetStats = "success get stats"
	MessageFailedGetStats  = "failed to get stats"
)

type (
	PopularCategory struct {
		Name        string `json:"name"`
		RecipeCount int64  `json:"recipe_count"`
	}

	StatsResponse struct {
		UsersCount      int64            `json:"users_count"`
		RecipesCount    int64            `json:"recipes_count"`
		CategoriesCount int64            `json:"categories_count"`
		PopularCategory *PopularCategory `json:"popular_category"`
	}
)
