package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `gorm:"default:user" json:"role"` // "admin" or "user"

	AvatarID  string `json:"avatar_id,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`

	// Reset tokens are stored hashed, never raw.
	ResetPasswordToken  string     `json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`

	Recipes []*Recipe `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
	Timestamp
}
