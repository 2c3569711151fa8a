package types

import (
	"github.com/cookshare/backend/internal/model"
)

// SignupRequest represents the request body for account creation
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by signup and login
type AuthResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// UploadRecipeRequest represents the request body for recipe upload.
// Ingredients and steps bind through model.EntryList, so clients may
// send plain strings, structured records, or a mix.
type UploadRecipeRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	Ingredients    model.EntryList `json:"ingredients" binding:"required"`
	Steps          model.EntryList `json:"steps" binding:"required"`
	ImageURL       string          `json:"image_url"`
	ReadyInMinutes *int            `json:"ready_in_minutes"`
	Servings       *int            `json:"servings"`
	Difficulty     string          `json:"difficulty"`
	IsPaid         bool            `json:"is_paid"`
	Country        string          `json:"country"`
	Region         string          `json:"region"`
}

// CommentRequest represents the request body for adding a comment
type CommentRequest struct {
	Text string `json:"text"`
}

// AskRequest represents the request body for the recipe assistant
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}
