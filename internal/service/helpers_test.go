package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cookshare/backend/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&model.User{}, &model.Recipe{}, &model.Like{}, &model.Comment{})
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()

	user := model.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestRecipe(t *testing.T, db *gorm.DB, recipe *model.Recipe) *model.Recipe {
	t.Helper()

	if recipe.Title == "" {
		recipe.Title = "Test Recipe"
	}
	if recipe.Category == "" {
		recipe.Category = model.CategoryFree
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}
