package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookshare/backend/internal/types"
)

func TestSignupEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name":     "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.AuthResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "alice", resp.Name)
	assert.NotEmpty(t, resp.UserID)
	assert.NotEmpty(t, resp.Token)
}

func TestSignupValidation(t *testing.T) {
	env := setupTestEnv(t)

	// Missing email.
	w := env.request(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name":     "alice",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password too short.
	w = env.request(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name":     "alice",
		"email":    "alice@example.com",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateEmailEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "alice")

	w := env.request(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name":     "impostor",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.signup(t, "alice")

	w := env.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.AuthResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, user.ID.String(), resp.UserID)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "alice")

	w := env.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProfileEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.signup(t, "alice")

	w := env.request(t, http.MethodGet, "/api/v1/profile/"+user.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Name    string        `json:"name"`
		Email   string        `json:"email"`
		Recipes []interface{} `json:"recipes"`
	}
	decodeJSON(t, w, &profile)
	assert.Equal(t, "alice", profile.Name)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Empty(t, profile.Recipes)
}

func TestProfileNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/profile/936da01f-9abd-4d9d-80c7-02af85c822a8", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	env := setupTestEnv(t)
	recipe := createRecipe(t, env.db, "Guarded")

	// No header.
	w := env.request(t, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String()+"/liked", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	w = env.request(t, http.MethodGet, "/api/v1/recipes/"+recipe.ID.String()+"/liked", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
