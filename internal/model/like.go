package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like is a per-(user, recipe) endorsement. The composite unique
// index is what keeps concurrent toggles from inserting duplicates.
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_recipe,priority:1" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_recipe,priority:2" json:"recipe_id"`
}

func (Like) TableName() string {
	return "recipe_likes"
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
