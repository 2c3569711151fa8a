package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cookshare/backend/internal/model"
	"github.com/cookshare/backend/internal/service"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	auth   *service.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Recipe{}, &model.Like{}, &model.Comment{}))

	authService := service.NewAuthService(db, "test-secret")
	recipeService := service.NewRecipeService(db)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(recipeService, nil, authService, nil).RegisterRoutes(v1)
	NewAskHandler(nil, authService).RegisterRoutes(v1)

	return &testEnv{db: db, router: router, auth: authService}
}

func (e *testEnv) signup(t *testing.T, name string) (*model.User, string) {
	t.Helper()
	user, token, err := e.auth.Signup(context.Background(), name, name+"@example.com", "password123")
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createRecipe(t *testing.T, db *gorm.DB, title string) *model.Recipe {
	t.Helper()
	recipe := model.Recipe{
		Title:       title,
		Category:    model.CategoryFree,
		Ingredients: model.TextEntries("salt"),
		Steps:       model.TextEntries("season"),
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}
