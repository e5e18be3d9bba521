package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"` // stored upper-cased

	Recipes []*Recipe `gorm:"many2many:recipe_categories" json:"recipes,omitempty"`
}
