package types

import (
	"github.com/google/uuid"
)

// RecipeView is the client-facing recipe representation. Field names
// follow the original frontend contract: "desc", "img" and "cookTime"
// are what the recipe cards render. Category appears twice: "tag" is
// the legacy alias older clients still read, and it goes away once
// they are migrated to "category".
type RecipeView struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"desc"`
	Image       string        `json:"img"`
	CookTime    string        `json:"cookTime"`
	Servings    int           `json:"servings"`
	Difficulty  string        `json:"difficulty"`
	Category    string        `json:"category"`
	Tag         string        `json:"tag"`
	Ingredients []string      `json:"ingredients"`
	Steps       []string      `json:"steps"`
	LikesCount  int           `json:"likes_count"`
	Comments    []CommentView `json:"comments"`
	Country     string        `json:"country,omitempty"`
	Region      string        `json:"region,omitempty"`
}

// CommentView carries the author's display name, never the raw user
// id, and the creation date as a calendar date (YYYY-MM-DD).
type CommentView struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	User string    `json:"user"`
	Date string    `json:"date"`
}

// LikeResult reports a toggle outcome. LikesCount is re-read after
// the mutation, not incremented in memory.
type LikeResult struct {
	Action     string `json:"action"`
	LikesCount int    `json:"likes_count"`
}

// Toggle actions.
const (
	ActionLiked   = "liked"
	ActionUnliked = "unliked"
)

// CatalogStats reports the recipe count and where it came from.
type CatalogStats struct {
	Total  int    `json:"total_recipes"`
	Source string `json:"status"`
}

// Stats sources.
const (
	StatsSourceStorage  = "storage"
	StatsSourceFallback = "fallback"
)
