package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty values accepted on upload.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Category tiers.
const (
	CategoryFree    = "FREE"
	CategoryPremium = "PREMIUM"
)

type Recipe struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	ImageURL       string         `gorm:"size:500" json:"image_url"`
	ReadyInMinutes *int           `json:"ready_in_minutes"`
	Servings       *int           `json:"servings"`
	Difficulty     string         `gorm:"size:20" json:"difficulty"`
	Ingredients    EntryList      `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps          EntryList      `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Category       string         `gorm:"size:20;default:'FREE'" json:"category"`
	Country        string         `gorm:"size:100" json:"country"`
	Region         string         `gorm:"size:100" json:"region"`
	// AuthorID is nil for seeded recipes.
	AuthorID *uuid.UUID `gorm:"type:uuid;index" json:"author_id"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
