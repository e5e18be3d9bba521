package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`

	PosterID  string `json:"poster_id,omitempty"`
	PosterURL string `json:"poster_url,omitempty"`

	Steps       []RecipeStep       `gorm:"foreignKey:RecipeID" json:"steps"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	Categories  []*Category        `gorm:"many2many:recipe_categories" json:"categories"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type RecipeStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	StepNumber  int       `json:"step"`
	Description string    `json:"description"`
}

type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity"`
}

// RecipeCategory is the join row linking a recipe to a category. A link
// existing means both sides reference each other.
type RecipeCategory struct {
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
}
